// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cluster groups comment texts by theme for the organizer view.

# Interface

The core consumes clustering through a narrow interface so any text
analytics backend can sit behind it:

	type Clusterer interface {
		Cluster(texts []string, k int) ([]int, error)
	}

One assignment per input, in input order. Callers treat the whole thing
as best-effort: a failure means "no clustering shown", never an error in
the comment/vote/room path.

# TFIDF

The built-in implementation runs k-means over tf-idf vectors with cosine
similarity:

	assignments, err := cluster.NewTFIDF().Cluster(texts, k)

Seeded deterministically and relabeled by first appearance, so the same
comment set clusters identically between polls.

# Sizing

ClampK picks the cluster count for n comments: n/4 bounded to [2, 6].
*/
package cluster
