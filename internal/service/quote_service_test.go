package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
)

func TestQuoteMutationsRequireAuthentication(t *testing.T) {
	svc := NewQuoteService(&stubQuoteRepo{}, nil, logger.NewNopLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "", &dto.CreateQuoteRequest{Content: "x"})
	var naErr *serverutils.NotAuthenticatedError
	require.ErrorAs(t, err, &naErr)
	assert.Contains(t, naErr.Error(), "ajouter une citation")

	err = svc.Update(ctx, "", "q1", &dto.UpdateQuoteRequest{})
	require.ErrorAs(t, err, &naErr)
	assert.Contains(t, naErr.Error(), "modifier une citation")

	err = svc.Delete(ctx, "", "q1")
	require.ErrorAs(t, err, &naErr)
	assert.Contains(t, naErr.Error(), "supprimer une citation")
}

func TestQuoteMutationsWithUser(t *testing.T) {
	svc := NewQuoteService(&stubQuoteRepo{}, nil, logger.NewNopLogger())
	ctx := context.Background()

	res, err := svc.Create(ctx, "u1", "Awa", &dto.CreateQuoteRequest{Content: "x"})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.NoError(t, svc.Update(ctx, "u1", "q1", &dto.UpdateQuoteRequest{}))
	assert.NoError(t, svc.Delete(ctx, "u1", "q1"))
}
