// Package filter implements the opaque predicate consumed by the dispatch
// loop: building a Filter from a client's SubscribeRequest and evaluating
// it against domain events to produce the set of matching labels.
package filter

import (
	"bytes"
	"fmt"

	"geyserfanout/internal/events"
	pb "geyserfanout/internal/proto/pb"
)

// Limits bounds a SubscribeRequest at construction time. Exceeding any of
// them fails New with a descriptive error, which the subscription handler
// surfaces as an InvalidArgument status.
type Limits struct {
	MaxLabelsPerKind int
	MaxPubkeysPerEntry int
	MaxTotalLabels     int
}

// DefaultLimits matches the teacher's config defaults (see internal/config).
var DefaultLimits = Limits{
	MaxLabelsPerKind:   64,
	MaxPubkeysPerEntry: 256,
	MaxTotalLabels:     64 * 5,
}

// Filter is the dispatch core's view of a subscription. The core never
// inspects an implementation's internals, only FiltersFor's return value.
type Filter interface {
	FiltersFor(e events.Event) []string
}

// Empty is the filter installed at connection time: it matches nothing, so
// no events flow until the subscriber's first SubscribeRequest is applied.
type Empty struct{}

// FiltersFor always returns no labels.
func (Empty) FiltersFor(events.Event) []string { return nil }

type accountCriteria struct {
	account [][32]byte
	owner   [][32]byte
}

type txCriteria struct {
	vote           *bool
	failed         *bool
	accountInclude [][32]byte
	accountExclude [][32]byte
}

type blockCriteria struct {
	accountInclude [][32]byte
}

// evaluator is the concrete Filter built from a client's SubscribeRequest.
// Map iteration order is irrelevant: every matching label is collected and
// returned, order does not affect correctness (§8 invariant 2 only
// requires the label *set* to match).
type evaluator struct {
	accounts     map[string]accountCriteria
	slots        []string
	transactions map[string]txCriteria
	blocks       map[string]blockCriteria
	blocksMeta   []string
}

// New builds a Filter from a client's SubscribeRequest, rejecting requests
// that exceed limits. The dispatch core never calls New directly; the
// subscription handler does, on the request-reader path.
func New(req *pb.SubscribeRequest, limits Limits) (Filter, error) {
	if req == nil {
		return Empty{}, nil
	}

	total := len(req.Accounts) + len(req.Slots) + len(req.Transactions) + len(req.Blocks) + len(req.BlocksMeta)
	if limits.MaxTotalLabels > 0 && total > limits.MaxTotalLabels {
		return nil, fmt.Errorf("total label count %d exceeds limit %d", total, limits.MaxTotalLabels)
	}
	if err := checkKindLimit("accounts", len(req.Accounts), limits); err != nil {
		return nil, err
	}
	if err := checkKindLimit("slots", len(req.Slots), limits); err != nil {
		return nil, err
	}
	if err := checkKindLimit("transactions", len(req.Transactions), limits); err != nil {
		return nil, err
	}
	if err := checkKindLimit("blocks", len(req.Blocks), limits); err != nil {
		return nil, err
	}
	if err := checkKindLimit("blocks_meta", len(req.BlocksMeta), limits); err != nil {
		return nil, err
	}

	ev := &evaluator{
		accounts:     make(map[string]accountCriteria, len(req.Accounts)),
		transactions: make(map[string]txCriteria, len(req.Transactions)),
		blocks:       make(map[string]blockCriteria, len(req.Blocks)),
	}

	for label, c := range req.Accounts {
		account, err := toPubkeys(c.GetAccount(), limits)
		if err != nil {
			return nil, fmt.Errorf("accounts[%s].account: %w", label, err)
		}
		owner, err := toPubkeys(c.GetOwner(), limits)
		if err != nil {
			return nil, fmt.Errorf("accounts[%s].owner: %w", label, err)
		}
		ev.accounts[label] = accountCriteria{account: account, owner: owner}
	}
	for label := range req.Slots {
		ev.slots = append(ev.slots, label)
	}
	for label, c := range req.Transactions {
		include, err := toPubkeys(c.GetAccountInclude(), limits)
		if err != nil {
			return nil, fmt.Errorf("transactions[%s].account_include: %w", label, err)
		}
		exclude, err := toPubkeys(c.GetAccountExclude(), limits)
		if err != nil {
			return nil, fmt.Errorf("transactions[%s].account_exclude: %w", label, err)
		}
		ev.transactions[label] = txCriteria{
			vote:           c.Vote,
			failed:         c.Failed,
			accountInclude: include,
			accountExclude: exclude,
		}
	}
	for label, c := range req.Blocks {
		include, err := toPubkeys(c.GetAccountInclude(), limits)
		if err != nil {
			return nil, fmt.Errorf("blocks[%s].account_include: %w", label, err)
		}
		ev.blocks[label] = blockCriteria{accountInclude: include}
	}
	for label := range req.BlocksMeta {
		ev.blocksMeta = append(ev.blocksMeta, label)
	}

	return ev, nil
}

func checkKindLimit(kind string, n int, limits Limits) error {
	if limits.MaxLabelsPerKind > 0 && n > limits.MaxLabelsPerKind {
		return fmt.Errorf("%s label count %d exceeds limit %d", kind, n, limits.MaxLabelsPerKind)
	}
	return nil
}

func toPubkeys(raw [][]byte, limits Limits) ([][32]byte, error) {
	if limits.MaxPubkeysPerEntry > 0 && len(raw) > limits.MaxPubkeysPerEntry {
		return nil, fmt.Errorf("pubkey count %d exceeds limit %d", len(raw), limits.MaxPubkeysPerEntry)
	}
	out := make([][32]byte, 0, len(raw))
	for _, b := range raw {
		if len(b) != 32 {
			return nil, fmt.Errorf("pubkey must be 32 bytes, got %d", len(b))
		}
		var key [32]byte
		copy(key[:], b)
		out = append(out, key)
	}
	return out, nil
}

func containsPubkey(list [][32]byte, key [32]byte) bool {
	for _, k := range list {
		if k == key {
			return true
		}
	}
	return false
}

func containsPubkeyBytes(list [][32]byte, key []byte) bool {
	for _, k := range list {
		if bytes.Equal(k[:], key) {
			return true
		}
	}
	return false
}

// FiltersFor returns the labels under which e matches, per §4.1/§4.5.
func (ev *evaluator) FiltersFor(e events.Event) []string {
	switch e.Kind {
	case events.KindAccount:
		return ev.filtersForAccount(e)
	case events.KindSlot:
		return append([]string(nil), ev.slots...)
	case events.KindTransaction:
		return ev.filtersForTransaction(e)
	case events.KindBlock:
		return ev.filtersForBlock(e)
	case events.KindBlockMeta:
		return append([]string(nil), ev.blocksMeta...)
	default:
		return nil
	}
}

func (ev *evaluator) filtersForAccount(e events.Event) []string {
	var labels []string
	for label, c := range ev.accounts {
		ownerMatch := len(c.owner) == 0 || containsPubkey(c.owner, e.Account.Owner)
		accountMatch := len(c.account) == 0 || containsPubkey(c.account, e.Account.Pubkey)
		if ownerMatch && accountMatch {
			labels = append(labels, label)
		}
	}
	return labels
}

func txAccountKeys(t events.TransactionInfo) [][]byte {
	keys := make([][]byte, len(t.Transaction.Message.AccountKeys))
	for i, k := range t.Transaction.Message.AccountKeys {
		kk := k
		keys[i] = kk[:]
	}
	return keys
}

func matchesAccountLists(keys [][]byte, include, exclude [][32]byte) bool {
	if len(exclude) > 0 {
		for _, k := range keys {
			if containsPubkeyBytes(exclude, k) {
				return false
			}
		}
	}
	if len(include) == 0 {
		return true
	}
	for _, k := range keys {
		if containsPubkeyBytes(include, k) {
			return true
		}
	}
	return false
}

func (ev *evaluator) filtersForTransaction(e events.Event) []string {
	var labels []string
	keys := txAccountKeys(e.Transaction)
	for label, c := range ev.transactions {
		if c.vote != nil && *c.vote != e.Transaction.IsVote {
			continue
		}
		if c.failed != nil && *c.failed != (e.Transaction.Meta.Err != nil) {
			continue
		}
		if !matchesAccountLists(keys, c.accountInclude, c.accountExclude) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (ev *evaluator) filtersForBlock(e events.Event) []string {
	var labels []string
	var keys [][]byte
	for _, t := range e.BlockTransactions {
		keys = append(keys, txAccountKeys(t)...)
	}
	for label, c := range ev.blocks {
		if len(c.accountInclude) == 0 {
			labels = append(labels, label)
			continue
		}
		for _, k := range keys {
			if containsPubkeyBytes(c.accountInclude, k) {
				labels = append(labels, label)
				break
			}
		}
	}
	return labels
}
