// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cluster

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"unicode"
)

// Clusterer assigns each input text to a cluster. Implementations must
// return one assignment per input, in input order. The comment/vote/room
// core never depends on a particular implementation; any failure here is
// caught at the handler boundary and degrades to "no clustering shown".
type Clusterer interface {
	Cluster(texts []string, k int) ([]int, error)
}

var ErrNoInput = errors.New("no texts to cluster")

// TFIDF clusters texts by k-means over tf-idf vectors with cosine
// similarity. Seeded deterministically so that repeated calls over the
// same comment set group identically between polls.
type TFIDF struct {
	MaxIter int
	Seed    int64
}

func NewTFIDF() *TFIDF {
	return &TFIDF{MaxIter: 25, Seed: 42}
}

// Cluster implements Clusterer. k is capped at len(texts).
func (c *TFIDF) Cluster(texts []string, k int) ([]int, error) {
	if len(texts) == 0 {
		return nil, ErrNoInput
	}
	if k < 1 {
		k = 1
	}
	if k > len(texts) {
		k = len(texts)
	}

	vectors, err := vectorize(texts)
	if err != nil {
		return nil, err
	}
	return kmeans(vectors, k, c.MaxIter, c.Seed), nil
}

// vector is a sparse unit-length tf-idf vector keyed by term index.
type vector map[int]float64

func vectorize(texts []string) ([]vector, error) {
	vocab := map[string]int{}
	docFreq := map[int]int{}
	tokenized := make([][]int, len(texts))

	for i, text := range texts {
		seen := map[int]bool{}
		for _, tok := range tokenize(text) {
			idx, ok := vocab[tok]
			if !ok {
				idx = len(vocab)
				vocab[tok] = idx
			}
			tokenized[i] = append(tokenized[i], idx)
			if !seen[idx] {
				seen[idx] = true
				docFreq[idx]++
			}
		}
	}

	n := float64(len(texts))
	vectors := make([]vector, len(texts))
	for i, terms := range tokenized {
		v := vector{}
		for _, idx := range terms {
			v[idx]++
		}
		var norm float64
		for idx, tf := range v {
			// Smoothed idf, same form sklearn uses.
			idf := math.Log((1+n)/(1+float64(docFreq[idx]))) + 1
			w := tf * idf
			v[idx] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for idx := range v {
				v[idx] /= norm
			}
		}
		vectors[i] = v
	}
	return vectors, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// kmeans runs Lloyd's algorithm over unit vectors with cosine similarity.
// On unit vectors the dot product is the cosine, so "closest centroid"
// means "largest dot product".
func kmeans(vectors []vector, k, maxIter int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))

	// Initial centroids: k distinct vectors picked by the seeded rng.
	perm := rng.Perm(len(vectors))
	centroids := make([]vector, k)
	for i := range k {
		centroids[i] = cloneVector(vectors[perm[i]])
	}

	assign := make([]int, len(vectors))
	for range maxIter {
		changed := false
		for i, v := range vectors {
			best, bestSim := assign[i], -1.0
			for ci, centroid := range centroids {
				if sim := dot(v, centroid); sim > bestSim {
					best, bestSim = ci, sim
				}
			}
			if best != assign[i] {
				assign[i] = best
				changed = true
			}
		}

		for ci := range centroids {
			centroids[ci] = meanVector(vectors, assign, ci)
		}

		if !changed {
			break
		}
	}
	return relabel(assign, k)
}

func dot(a, b vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for idx, w := range a {
		sum += w * b[idx]
	}
	return sum
}

func cloneVector(v vector) vector {
	out := make(vector, len(v))
	for idx, w := range v {
		out[idx] = w
	}
	return out
}

func meanVector(vectors []vector, assign []int, cluster int) vector {
	out := vector{}
	count := 0
	for i, v := range vectors {
		if assign[i] != cluster {
			continue
		}
		count++
		for idx, w := range v {
			out[idx] += w
		}
	}
	if count == 0 {
		return out
	}
	var norm float64
	for _, w := range out {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range out {
			out[idx] /= norm
		}
	}
	return out
}

// relabel renumbers cluster ids by first appearance so output labels are
// stable regardless of which seed vectors started each cluster.
func relabel(assign []int, k int) []int {
	next := 0
	mapping := make([]int, k)
	for i := range mapping {
		mapping[i] = -1
	}
	out := make([]int, len(assign))
	for i, a := range assign {
		if mapping[a] == -1 {
			mapping[a] = next
			next++
		}
		out[i] = mapping[a]
	}
	return out
}

// ClampK picks the requested cluster count for n comments: n/4 bounded to
// [2, 6], the same sizing the organizer view has always used.
func ClampK(n int) int {
	k := n / 4
	if k < 2 {
		k = 2
	}
	if k > 6 {
		k = 6
	}
	return k
}
