// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cluster

import (
	"slices"
	"testing"
)

func TestClusterAssignmentShape(t *testing.T) {
	texts := []string{
		"the microphone is too quiet",
		"cannot hear the speaker",
		"slides are too small",
		"font size on the slides",
		"room is cold",
	}

	assign, err := NewTFIDF().Cluster(texts, 2)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	if len(assign) != len(texts) {
		t.Fatalf("Expected %d assignments, got %d", len(texts), len(assign))
	}
	for i, a := range assign {
		if a < 0 || a >= 2 {
			t.Errorf("Assignment %d out of range: %d", i, a)
		}
	}
	// Labels are renumbered by first appearance
	if assign[0] != 0 {
		t.Errorf("First text must carry label 0, got %d", assign[0])
	}
}

func TestClusterDeterministic(t *testing.T) {
	texts := []string{
		"audio issues in the back",
		"audio is fine up front",
		"need more coffee breaks",
		"coffee ran out early",
		"wifi keeps dropping",
		"wifi password does not work",
	}

	first, err := NewTFIDF().Cluster(texts, 3)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := NewTFIDF().Cluster(texts, 3)
		if err != nil {
			t.Fatalf("Cluster failed: %v", err)
		}
		if !slices.Equal(first, again) {
			t.Fatalf("Run %d diverged: %v vs %v", i, first, again)
		}
	}
}

func TestClusterSeparatesDisjointVocabularies(t *testing.T) {
	// Two themes with zero shared terms. Cosine similarity across themes is
	// exactly 0, so k-means with k=2 must keep them apart.
	texts := []string{
		"microphone audio volume sound",
		"sound microphone volume",
		"audio volume microphone sound sound",
		"parking garage entrance blocked",
		"garage parking blocked",
		"entrance parking garage blocked blocked",
	}

	assign, err := NewTFIDF().Cluster(texts, 2)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	if assign[0] != assign[1] || assign[1] != assign[2] {
		t.Errorf("Audio comments split across clusters: %v", assign)
	}
	if assign[3] != assign[4] || assign[4] != assign[5] {
		t.Errorf("Parking comments split across clusters: %v", assign)
	}
	if assign[0] == assign[3] {
		t.Errorf("Disjoint themes merged into one cluster: %v", assign)
	}
}

func TestClusterEdgeInputs(t *testing.T) {
	c := NewTFIDF()

	if _, err := c.Cluster(nil, 2); err != ErrNoInput {
		t.Errorf("Expected ErrNoInput for empty input, got %v", err)
	}

	// k capped at len(texts)
	assign, err := c.Cluster([]string{"only one"}, 5)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	if !slices.Equal(assign, []int{0}) {
		t.Errorf("Single text should land in cluster 0, got %v", assign)
	}

	// k below 1 is lifted to 1
	assign, err = c.Cluster([]string{"a b", "c d"}, 0)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	if !slices.Equal(assign, []int{0, 0}) {
		t.Errorf("k=0 should collapse to one cluster, got %v", assign)
	}
}

func TestClampK(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 2},
		{4, 2},
		{8, 2},
		{12, 3},
		{20, 5},
		{24, 6},
		{100, 6},
	}
	for _, tc := range cases {
		if got := ClampK(tc.n); got != tc.want {
			t.Errorf("ClampK(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}
