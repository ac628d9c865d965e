// Package events defines the ledger event model consumed by the dispatch
// loop and the pure projection from that model to wire messages.
package events

// SlotStatus mirrors the ledger's internal commitment levels. Note that
// "Rooted" on the host side becomes "Finalized" on the wire (project.go).
type SlotStatus int

const (
	SlotProcessed SlotStatus = iota
	SlotConfirmed
	SlotRooted
)

// Kind tags which variant of Event is populated. Consumers switch on Kind
// rather than type-asserting payload fields, keeping the match exhaustive
// and cheap on the dispatch hot path.
type Kind int

const (
	KindSlot Kind = iota
	KindAccount
	KindTransaction
	KindBlockMeta
	KindBlock
)

// AccountInfo is the account-write payload shared by KindAccount events.
type AccountInfo struct {
	Pubkey       [32]byte
	Lamports     uint64
	Owner        [32]byte
	Executable   bool
	RentEpoch    uint64
	Data         []byte
	WriteVersion uint64
	TxnSignature *[64]byte
}

// MessageHeader is the signer/readonly account-count header of a sanitized
// transaction message.
type MessageHeader struct {
	NumRequiredSignatures       uint8
	NumReadonlySignedAccounts   uint8
	NumReadonlyUnsignedAccounts uint8
}

// CompiledInstruction references accounts and instruction data by index into
// the enclosing message's account_keys.
type CompiledInstruction struct {
	ProgramIDIndex uint8
	Accounts       []byte
	Data           []byte
}

// AddressTableLookup is present only on versioned messages.
type AddressTableLookup struct {
	AccountKey      [32]byte
	WritableIndexes []byte
	ReadonlyIndexes []byte
}

// Message is the sanitized transaction body: account keys, instructions,
// and (for versioned transactions) address-table lookups.
type Message struct {
	Header              MessageHeader
	AccountKeys         [][32]byte
	RecentBlockhash     [32]byte
	Instructions        []CompiledInstruction
	Versioned           bool
	AddressTableLookups []AddressTableLookup
}

// SanitizedTransaction is a transaction that passed upstream validation.
type SanitizedTransaction struct {
	Signatures [][64]byte
	Message    Message
}

// InnerInstruction extends CompiledInstruction with an optional CPI depth.
type InnerInstruction struct {
	CompiledInstruction
	StackHeight *uint32
}

// InnerInstructions groups the inner instructions produced by one top-level
// instruction, identified by its index.
type InnerInstructions struct {
	Index        uint8
	Instructions []InnerInstruction
}

// UITokenAmount is a token balance rendered in both raw and decimal form.
type UITokenAmount struct {
	UIAmount       float64
	Decimals       uint8
	Amount         string
	UIAmountString string
}

// TokenBalance describes one pre/post SPL token balance entry.
type TokenBalance struct {
	AccountIndex  uint8
	Mint          string
	UITokenAmount UITokenAmount
	Owner         string
	ProgramID     string
}

// RewardType classifies why a Reward was paid.
type RewardType int

const (
	RewardUnspecified RewardType = iota
	RewardFee
	RewardRent
	RewardStaking
	RewardVoting
)

// Reward is a single lamport transfer credited as part of block processing.
type Reward struct {
	Pubkey      string
	Lamports    int64
	PostBalance uint64
	RewardType  RewardType
	// Commission is a decimal string; empty when the reward has none
	// (only staking/voting rewards carry a commission).
	Commission string
}

// ReturnData is the program return value recorded for the last top-level
// instruction that set one, if any.
type ReturnData struct {
	ProgramID [32]byte
	Data      []byte
}

// TransactionMeta is the execution status and side-effect metadata attached
// to a processed transaction. The "optional list" fields use a nil slice
// paired with an explicit *None bool to distinguish "absent" from "empty"
// (see project.go).
type TransactionMeta struct {
	// Err is the bincode-serialized execution error, nil on success.
	Err                  []byte
	Fee                  uint64
	PreBalances          []uint64
	PostBalances         []uint64
	InnerInstructions    []InnerInstructions
	InnerInstructionsNone bool
	LogMessages          []string
	LogMessagesNone      bool
	PreTokenBalances     []TokenBalance
	PostTokenBalances    []TokenBalance
	Rewards              []Reward
	RewardsNone          bool
	LoadedWritableAddresses [][32]byte
	LoadedReadonlyAddresses [][32]byte
	ReturnData           *ReturnData
	ComputeUnitsConsumed uint64
}

// TransactionInfo is the per-transaction payload carried by KindTransaction
// and by each entry of a Block's transaction list.
type TransactionInfo struct {
	Signature   [64]byte
	IsVote      bool
	Transaction SanitizedTransaction
	Meta        TransactionMeta
	Index       uint64
}

// BlockMetaInfo is the metadata common to both KindBlockMeta and KindBlock.
type BlockMetaInfo struct {
	Slot                     uint64
	Blockhash                string
	ParentSlot               uint64
	ParentBlockhash          string
	BlockTime                *int64
	BlockHeight              *uint64
	Rewards                  []Reward
	ExecutedTransactionCount uint64
}

// Event is the tagged union produced exactly once by the upstream
// collaborator and consumed read-only by the dispatch loop. Only the
// field(s) matching Kind are populated.
type Event struct {
	Kind Kind

	// KindSlot
	Slot       uint64
	SlotParent *uint64
	SlotStatus SlotStatus

	// KindAccount (also uses Slot above)
	AccountIsStartup bool
	Account          AccountInfo

	// KindTransaction (also uses Slot above)
	Transaction TransactionInfo

	// KindBlockMeta / KindBlock
	BlockMeta BlockMetaInfo

	// KindBlock only
	BlockTransactions []TransactionInfo
}
