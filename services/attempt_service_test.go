package services

import (
	"errors"
	"testing"

	"mcqbank/models"
)

func TestRecordSnapshotsCorrectness(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	mcqs := NewMCQService(db)
	svc := NewAttemptService(db)

	mcq, err := mcqs.Create(owner.ID, validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, c := range mcq.Choices {
		attempt, err := svc.Record(mcq.ID, owner.ID, c.ID)
		if err != nil {
			t.Fatalf("record choice %d: %v", c.ID, err)
		}
		if attempt.IsCorrect.Bool() != c.IsCorrect.Bool() {
			t.Fatalf("attempt is_correct = %v, choice is_correct = %v", attempt.IsCorrect.Bool(), c.IsCorrect.Bool())
		}

		var stored models.Attempt
		if err := db.First(&stored, attempt.ID).Error; err != nil {
			t.Fatalf("reload attempt: %v", err)
		}
		if stored.IsCorrect.Bool() != c.IsCorrect.Bool() {
			t.Fatalf("stored is_correct = %v, want %v", stored.IsCorrect.Bool(), c.IsCorrect.Bool())
		}
	}
}

func TestRecordForeignChoiceRejected(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	mcqs := NewMCQService(db)
	svc := NewAttemptService(db)

	first, err := mcqs.Create(owner.ID, validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	other := validCreateRequest()
	other.Title = "Another question"
	second, err := mcqs.Create(owner.ID, other)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Record(first.ID, owner.ID, second.Choices[0].ID)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if n := countRows(t, db, &models.Attempt{}); n != 0 {
		t.Fatalf("%d attempt rows persisted after rejected record", n)
	}
}

func TestRecordMissingMCQ(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	svc := NewAttemptService(db)

	_, err := svc.Record(9999, owner.ID, 1)
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRecordAllowsRepeats(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	mcqs := NewMCQService(db)
	svc := NewAttemptService(db)

	mcq, err := mcqs.Create(owner.ID, validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Record(mcq.ID, owner.ID, mcq.Choices[0].ID); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	if n := countRows(t, db, &models.Attempt{}); n != 3 {
		t.Fatalf("%d attempt rows, want 3", n)
	}
}

func TestListForUserOrderAndScope(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	mcqs := NewMCQService(db)
	svc := NewAttemptService(db)

	mcq, err := mcqs.Create(owner.ID, validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	selections := []uint{mcq.Choices[2].ID, mcq.Choices[0].ID, mcq.Choices[1].ID}
	for _, choiceID := range selections {
		if _, err := svc.Record(mcq.ID, owner.ID, choiceID); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if _, err := svc.Record(mcq.ID, other.ID, mcq.Choices[0].ID); err != nil {
		t.Fatalf("record other user: %v", err)
	}

	attempts, err := svc.ListForUser(mcq.ID, owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("got %d attempts, want 3", len(attempts))
	}
	for i, a := range attempts {
		if a.SelectedChoiceID != selections[i] {
			t.Fatalf("attempt %d selected %d, want %d", i, a.SelectedChoiceID, selections[i])
		}
		if a.UserID != owner.ID {
			t.Fatalf("attempt %d belongs to user %d", i, a.UserID)
		}
	}
	for i := 1; i < len(attempts); i++ {
		if attempts[i].AttemptedAt.Before(attempts[i-1].AttemptedAt) {
			t.Fatalf("attempts not in ascending time order")
		}
	}
}

func TestAssertOwner(t *testing.T) {
	mcq := &models.MCQ{CreatedBy: 7}
	if err := AssertOwner(mcq, 7); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}
	err := AssertOwner(mcq, 8)
	var fErr *ForbiddenError
	if !errors.As(err, &fErr) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
}
