// Package search implements the secondary free-text index for bank accounts
// on Redis. Each document is stored as JSON under a doc key, and a lowercase
// token inverted index (one set per token) answers queries; the set of tokens
// currently indexed for a document is tracked so re-indexing and deletion can
// clean up stale entries.
package search

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mycompany/bankapp/pkg/dto"
	"github.com/mycompany/bankapp/pkg/repository"
)

type redisSearchRepository struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisSearchRepository creates a Redis-backed search repository. All keys
// are namespaced under the given prefix.
func NewRedisSearchRepository(
	client *redis.Client,
	prefix string,
	logger *slog.Logger,
) repository.SearchRepository {
	return &redisSearchRepository{client: client, prefix: prefix, logger: logger}
}

func (r *redisSearchRepository) docKey(id string) string {
	return r.prefix + "bankaccount:doc:" + id
}

func (r *redisSearchRepository) tokenKey(token string) string {
	return r.prefix + "bankaccount:tok:" + token
}

func (r *redisSearchRepository) docTokensKey(id string) string {
	return r.prefix + "bankaccount:doctok:" + id
}

// Index implements repository.SearchRepository.
func (r *redisSearchRepository) Index(ctx context.Context, doc *dto.BankAccountRead) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	id := doc.ID.String()
	tokens := tokenize(strings.Join([]string{
		doc.AccountName,
		doc.BankName,
		doc.AccountNumber,
		doc.HolderName,
		doc.Currency,
	}, " "))

	old, err := r.client.SMembers(ctx, r.docTokensKey(id)).Result()
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	for _, token := range old {
		pipe.SRem(ctx, r.tokenKey(token), id)
	}
	pipe.Del(ctx, r.docTokensKey(id))
	pipe.Set(ctx, r.docKey(id), payload, 0)
	for _, token := range tokens {
		pipe.SAdd(ctx, r.tokenKey(token), id)
		pipe.SAdd(ctx, r.docTokensKey(id), token)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	r.logger.Debug("indexed bank account", "id", id, "tokens", len(tokens))
	return nil
}

// Search implements repository.SearchRepository. Every query token must match
// a document token for the document to be returned; an empty query matches
// nothing.
func (r *redisSearchRepository) Search(ctx context.Context, query string) ([]*dto.BankAccountRead, error) {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return []*dto.BankAccountRead{}, nil
	}

	keys := make([]string, 0, len(tokens))
	for _, token := range tokens {
		keys = append(keys, r.tokenKey(token))
	}
	ids, err := r.client.SInter(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*dto.BankAccountRead{}, nil
	}
	sort.Strings(ids)

	docKeys := make([]string, 0, len(ids))
	for _, id := range ids {
		docKeys = append(docKeys, r.docKey(id))
	}
	values, err := r.client.MGet(ctx, docKeys...).Result()
	if err != nil {
		return nil, err
	}

	results := make([]*dto.BankAccountRead, 0, len(values))
	for _, value := range values {
		payload, ok := value.(string)
		if !ok {
			// Token set referenced a document that no longer exists.
			continue
		}
		var doc dto.BankAccountRead
		if err := json.Unmarshal([]byte(payload), &doc); err != nil {
			r.logger.Warn("skipping malformed search document", "error", err)
			continue
		}
		results = append(results, &doc)
	}
	return results, nil
}

// Delete implements repository.SearchRepository.
func (r *redisSearchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := id.String()
	old, err := r.client.SMembers(ctx, r.docTokensKey(key)).Result()
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	for _, token := range old {
		pipe.SRem(ctx, r.tokenKey(token), key)
	}
	pipe.Del(ctx, r.docTokensKey(key))
	pipe.Del(ctx, r.docKey(key))
	_, err = pipe.Exec(ctx)
	return err
}

// tokenize lowercases the input and splits it into unique letter/digit runs,
// preserving first-seen order.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		tokens = append(tokens, field)
	}
	return tokens
}
