package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/example/sneakfits/internal/domain/commission"
	"github.com/example/sneakfits/internal/domain/shoe"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Error Mapping Tests
// ============================================================================

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{shoe.ErrShoeNotFound, http.StatusNotFound},
		{shoe.ErrAlreadySold, http.StatusConflict},
		{shoe.ErrNotSold, http.StatusConflict},
		{shoe.ErrMissingField, http.StatusBadRequest},
		{shoe.ErrInvalidPrice, http.StatusBadRequest},
		{shoe.ErrInvalidLocation, http.StatusBadRequest},
		{commission.ErrMissingParty, http.StatusBadRequest},
		{commission.ErrUnknownParty, http.StatusBadRequest},
		{commission.ErrUnknownChannel, http.StatusBadRequest},
		{commission.ErrWalkInSeller, http.StatusBadRequest},
		{fmt.Errorf("kafka is down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestStatusForError_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("selling shoe abc: %w", shoe.ErrAlreadySold)
	assert.Equal(t, http.StatusConflict, statusForError(wrapped))
}
