// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/ars-canvas/testutil"
)

func TestCastVoteOncePerVoter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")
	code := testutil.CreateTestRoom(t, conn, "200001", "")
	id := testutil.AddTestComment(t, conn, code, "vote for me", 0, time.Now().UTC())

	recorded, err := st.CastVote(code, id, "voter-1")
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if !recorded {
		t.Error("First cast should be recorded")
	}

	// Same voter again: absorbed, counter untouched
	recorded, err = st.CastVote(code, id, "voter-1")
	if err != nil {
		t.Fatalf("Duplicate CastVote failed: %v", err)
	}
	if recorded {
		t.Error("Duplicate cast should not be recorded")
	}

	c, err := st.GetComment(id)
	if err != nil {
		t.Fatalf("GetComment failed: %v", err)
	}
	if c.Votes != 1 {
		t.Errorf("Expected 1 vote after duplicate cast, got %d", c.Votes)
	}

	// A different voter still counts
	recorded, err = st.CastVote(code, id, "voter-2")
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if !recorded {
		t.Error("Second voter's cast should be recorded")
	}

	c, _ = st.GetComment(id)
	if c.Votes != 2 {
		t.Errorf("Expected 2 votes, got %d", c.Votes)
	}
}

func TestCastVoteEmptyVoter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")
	code := testutil.CreateTestRoom(t, conn, "200002", "")
	id := testutil.AddTestComment(t, conn, code, "anonymous?", 0, time.Now().UTC())

	recorded, err := st.CastVote(code, id, "")
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if recorded {
		t.Error("Empty voter ID should be absorbed")
	}
	if n := testutil.CountRows(t, conn, "votes"); n != 0 {
		t.Errorf("Expected 0 vote rows, got %d", n)
	}
}

func TestCastVoteStaleComment(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")
	code := testutil.CreateTestRoom(t, conn, "200003", "")
	other := testutil.CreateTestRoom(t, conn, "200004", "")
	foreign := testutil.AddTestComment(t, conn, other, "wrong room", 0, time.Now().UTC())

	// Comment that never existed
	recorded, err := st.CastVote(code, 99999, "voter-1")
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if recorded {
		t.Error("Vote for a missing comment should be absorbed")
	}

	// Comment from another room
	recorded, err = st.CastVote(code, foreign, "voter-1")
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if recorded {
		t.Error("Vote for a foreign comment should be absorbed")
	}

	// The rolled-back insert must not leave a vote row behind
	if n := testutil.CountRows(t, conn, "votes"); n != 0 {
		t.Errorf("Expected 0 vote rows after absorbed casts, got %d", n)
	}

	c, _ := st.GetComment(foreign)
	if c.Votes != 0 {
		t.Errorf("Foreign comment counter should be untouched, got %d", c.Votes)
	}
}

// TestCastVoteConcurrent hammers one (comment, voter) pair from many
// goroutines. Exactly one cast may win; the counter and the vote table must
// agree on one.
func TestCastVoteConcurrent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")
	code := testutil.CreateTestRoom(t, conn, "200005", "")
	id := testutil.AddTestComment(t, conn, code, "race me", 0, time.Now().UTC())

	const workers = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		recorded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := st.CastVote(code, id, "same-voter")
			if err != nil {
				t.Errorf("CastVote failed: %v", err)
				return
			}
			if ok {
				mu.Lock()
				recorded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if recorded != 1 {
		t.Errorf("Expected exactly 1 recorded cast, got %d", recorded)
	}
	if n := testutil.CountRows(t, conn, "votes"); n != 1 {
		t.Errorf("Expected exactly 1 vote row, got %d", n)
	}
	c, err := st.GetComment(id)
	if err != nil {
		t.Fatalf("GetComment failed: %v", err)
	}
	if c.Votes != 1 {
		t.Errorf("Expected counter at exactly 1, got %d", c.Votes)
	}
}

func TestHasVoted(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")
	code := testutil.CreateTestRoom(t, conn, "200006", "")
	id := testutil.AddTestComment(t, conn, code, "check me", 0, time.Now().UTC())

	voted, err := st.HasVoted(code, id, "voter-1")
	if err != nil {
		t.Fatalf("HasVoted failed: %v", err)
	}
	if voted {
		t.Error("Expected has_voted=false before casting")
	}

	if _, err := st.CastVote(code, id, "voter-1"); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}

	voted, err = st.HasVoted(code, id, "voter-1")
	if err != nil {
		t.Fatalf("HasVoted failed: %v", err)
	}
	if !voted {
		t.Error("Expected has_voted=true after casting")
	}

	// Different voter and empty voter both read false
	if voted, _ := st.HasVoted(code, id, "voter-2"); voted {
		t.Error("Other voters should read false")
	}
	if voted, _ := st.HasVoted(code, id, ""); voted {
		t.Error("Empty voter should read false")
	}
}
