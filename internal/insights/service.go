package insights

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/vmilosevic/liftinsights/internal/strength"
	"github.com/vmilosevic/liftinsights/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=insights_mocks_test.go -package=insights_test

type completionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const (
	narrativeCacheExpireSeconds = 60 * 60
	narrativeCacheSizeBytes     = 10 * 1024 * 1024
)

// Service produces LLM narratives for already-computed strength findings.
// Identical findings map to the same cache key, so repeated analysis calls
// do not hit the completion API again for an hour.
type Service struct {
	client completionClient
	cache  *freecache.Cache
}

func NewService(client completionClient) *Service {
	return &Service{
		client: client,
		cache:  freecache.NewCache(narrativeCacheSizeBytes),
	}
}

func (s *Service) ImbalanceNarrative(
	ctx context.Context,
	findings []strength.Finding,
	summary string,
) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insights.imbalanceNarrative")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey, err := findingsDigest(findings)
	if err != nil {
		return "", fmt.Errorf("findings digest: %w", err)
	}

	if cached, err := s.cache.Get(cacheKey); err == nil {
		log.Tracef("imbalance narrative found in cache")
		return string(cached), nil
	}

	prompt := BuildImbalancePrompt(findings, summary)
	narrative, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}

	if err := s.cache.Set(cacheKey, []byte(narrative), narrativeCacheExpireSeconds); err != nil {
		log.Warnf("failed to cache imbalance narrative: %s", err)
	}

	return narrative, nil
}

func findingsDigest(findings []strength.Finding) ([]byte, error) {
	findingsJson, err := json.Marshal(findings)
	if err != nil {
		return nil, err
	}
	digest := sha1.Sum(findingsJson)
	key := hex.EncodeToString(digest[:])
	return []byte("imbalance::" + key), nil
}
