package events

import pb "geyserfanout/internal/proto/pb"

// Project is the pure, total mapping from a domain Event to its wire
// message. It never fails: every Event produced by the upstream
// collaborator has a representation on the wire. Labels are attached by the
// dispatch loop, not here.
func Project(e Event) *pb.SubscribeUpdate {
	switch e.Kind {
	case KindSlot:
		return &pb.SubscribeUpdate{UpdateOneof: &pb.SubscribeUpdate_Slot{Slot: projectSlot(e)}}
	case KindAccount:
		return &pb.SubscribeUpdate{UpdateOneof: &pb.SubscribeUpdate_Account{Account: projectAccount(e)}}
	case KindTransaction:
		return &pb.SubscribeUpdate{UpdateOneof: &pb.SubscribeUpdate_Transaction{Transaction: projectTransaction(e)}}
	case KindBlockMeta:
		return &pb.SubscribeUpdate{UpdateOneof: &pb.SubscribeUpdate_BlockMeta{BlockMeta: projectBlockMeta(e)}}
	case KindBlock:
		return &pb.SubscribeUpdate{UpdateOneof: &pb.SubscribeUpdate_Block{Block: projectBlock(e)}}
	default:
		return &pb.SubscribeUpdate{UpdateOneof: &pb.SubscribeUpdate_Ping{Ping: &pb.SubscribeUpdatePing{}}}
	}
}

// ProjectPing builds the keepalive wire message. Pings carry no labels.
func ProjectPing() *pb.SubscribeUpdate {
	return &pb.SubscribeUpdate{UpdateOneof: &pb.SubscribeUpdate_Ping{Ping: &pb.SubscribeUpdatePing{}}}
}

func projectSlotStatus(s SlotStatus) pb.SlotStatus {
	switch s {
	case SlotProcessed:
		return pb.SlotStatus_PROCESSED
	case SlotConfirmed:
		return pb.SlotStatus_CONFIRMED
	default:
		// SlotRooted on the host side is wire-named Finalized.
		return pb.SlotStatus_FINALIZED
	}
}

func projectSlot(e Event) *pb.SubscribeUpdateSlot {
	return &pb.SubscribeUpdateSlot{
		Slot:   e.Slot,
		Parent: e.SlotParent,
		Status: projectSlotStatus(e.SlotStatus),
	}
}

func projectAccountInfo(a AccountInfo) *pb.SubscribeUpdateAccountInfo {
	info := &pb.SubscribeUpdateAccountInfo{
		Pubkey:       a.Pubkey[:],
		Lamports:     a.Lamports,
		Owner:        a.Owner[:],
		Executable:   a.Executable,
		RentEpoch:    a.RentEpoch,
		Data:         a.Data,
		WriteVersion: a.WriteVersion,
	}
	if a.TxnSignature != nil {
		info.TxnSignature = a.TxnSignature[:]
	}
	return info
}

func projectAccount(e Event) *pb.SubscribeUpdateAccount {
	return &pb.SubscribeUpdateAccount{
		Account:   projectAccountInfo(e.Account),
		Slot:      e.Slot,
		IsStartup: e.AccountIsStartup,
	}
}

func projectMessageHeader(h MessageHeader) *pb.MessageHeader {
	return &pb.MessageHeader{
		NumRequiredSignatures:       uint32(h.NumRequiredSignatures),
		NumReadonlySignedAccounts:   uint32(h.NumReadonlySignedAccounts),
		NumReadonlyUnsignedAccounts: uint32(h.NumReadonlyUnsignedAccounts),
	}
}

func projectCompiledInstruction(ci CompiledInstruction) *pb.CompiledInstruction {
	return &pb.CompiledInstruction{
		ProgramIdIndex: uint32(ci.ProgramIDIndex),
		Accounts:       ci.Accounts,
		Data:           ci.Data,
	}
}

func projectAddressTableLookup(l AddressTableLookup) *pb.MessageAddressTableLookup {
	return &pb.MessageAddressTableLookup{
		AccountKey:      l.AccountKey[:],
		WritableIndexes: l.WritableIndexes,
		ReadonlyIndexes: l.ReadonlyIndexes,
	}
}

func projectMessage(m Message) *pb.Message {
	keys := make([][]byte, len(m.AccountKeys))
	for i, k := range m.AccountKeys {
		keys[i] = k[:]
	}
	instructions := make([]*pb.CompiledInstruction, len(m.Instructions))
	for i, ins := range m.Instructions {
		instructions[i] = projectCompiledInstruction(ins)
	}
	// Legacy (non-versioned) messages always emit an empty lookup list.
	var lookups []*pb.MessageAddressTableLookup
	if m.Versioned {
		lookups = make([]*pb.MessageAddressTableLookup, len(m.AddressTableLookups))
		for i, l := range m.AddressTableLookups {
			lookups[i] = projectAddressTableLookup(l)
		}
	}
	return &pb.Message{
		Header:              projectMessageHeader(m.Header),
		AccountKeys:         keys,
		RecentBlockhash:     m.RecentBlockhash[:],
		Instructions:        instructions,
		Versioned:           m.Versioned,
		AddressTableLookups: lookups,
	}
}

func projectTransactionBody(t SanitizedTransaction) *pb.Transaction {
	sigs := make([][]byte, len(t.Signatures))
	for i, s := range t.Signatures {
		sigs[i] = s[:]
	}
	return &pb.Transaction{
		Signatures: sigs,
		Message:    projectMessage(t.Message),
	}
}

func projectInnerInstruction(ii InnerInstruction) *pb.InnerInstruction {
	return &pb.InnerInstruction{
		ProgramIdIndex: uint32(ii.ProgramIDIndex),
		Accounts:       ii.Accounts,
		Data:           ii.Data,
		StackHeight:    ii.StackHeight,
	}
}

func projectInnerInstructions(group InnerInstructions) *pb.InnerInstructions {
	out := make([]*pb.InnerInstruction, len(group.Instructions))
	for i, ins := range group.Instructions {
		out[i] = projectInnerInstruction(ins)
	}
	return &pb.InnerInstructions{Index: uint32(group.Index), Instructions: out}
}

func projectUITokenAmount(a UITokenAmount) *pb.UiTokenAmount {
	return &pb.UiTokenAmount{
		UiAmount:       a.UIAmount,
		Decimals:       uint32(a.Decimals),
		Amount:         a.Amount,
		UiAmountString: a.UIAmountString,
	}
}

func projectTokenBalance(b TokenBalance) *pb.TokenBalance {
	return &pb.TokenBalance{
		AccountIndex:  uint32(b.AccountIndex),
		Mint:          b.Mint,
		UiTokenAmount: projectUITokenAmount(b.UITokenAmount),
		Owner:         b.Owner,
		ProgramId:     b.ProgramID,
	}
}

func projectRewardType(t RewardType) pb.RewardType {
	switch t {
	case RewardFee:
		return pb.RewardType_REWARD_TYPE_FEE
	case RewardRent:
		return pb.RewardType_REWARD_TYPE_RENT
	case RewardStaking:
		return pb.RewardType_REWARD_TYPE_STAKING
	case RewardVoting:
		return pb.RewardType_REWARD_TYPE_VOTING
	default:
		return pb.RewardType_REWARD_TYPE_UNSPECIFIED
	}
}

func projectReward(r Reward) *pb.Reward {
	return &pb.Reward{
		Pubkey:      r.Pubkey,
		Lamports:    r.Lamports,
		PostBalance: r.PostBalance,
		RewardType:  projectRewardType(r.RewardType),
		// Absent commission serializes as the empty string, not omitted.
		Commission: r.Commission,
	}
}

func projectRewards(rewards []Reward) *pb.Rewards {
	out := make([]*pb.Reward, len(rewards))
	for i, r := range rewards {
		out[i] = projectReward(r)
	}
	return &pb.Rewards{Rewards: out}
}

func projectReturnData(r *ReturnData) *pb.ReturnData {
	if r == nil {
		return nil
	}
	return &pb.ReturnData{ProgramId: r.ProgramID[:], Data: r.Data}
}

func projectMeta(m TransactionMeta) *pb.TransactionStatusMeta {
	var errBlob *pb.TransactionError
	if m.Err != nil {
		errBlob = &pb.TransactionError{Err: m.Err}
	}

	innerGroups := make([]*pb.InnerInstructions, len(m.InnerInstructions))
	for i, g := range m.InnerInstructions {
		innerGroups[i] = projectInnerInstructions(g)
	}

	preTok := make([]*pb.TokenBalance, len(m.PreTokenBalances))
	for i, b := range m.PreTokenBalances {
		preTok[i] = projectTokenBalance(b)
	}
	postTok := make([]*pb.TokenBalance, len(m.PostTokenBalances))
	for i, b := range m.PostTokenBalances {
		postTok[i] = projectTokenBalance(b)
	}

	rewards := make([]*pb.Reward, len(m.Rewards))
	for i, r := range m.Rewards {
		rewards[i] = projectReward(r)
	}

	writable := make([][]byte, len(m.LoadedWritableAddresses))
	for i, a := range m.LoadedWritableAddresses {
		writable[i] = a[:]
	}
	readonly := make([][]byte, len(m.LoadedReadonlyAddresses))
	for i, a := range m.LoadedReadonlyAddresses {
		readonly[i] = a[:]
	}

	return &pb.TransactionStatusMeta{
		Err:                     errBlob,
		Fee:                     m.Fee,
		PreBalances:             m.PreBalances,
		PostBalances:            m.PostBalances,
		InnerInstructions:       innerGroups,
		InnerInstructionsNone:   m.InnerInstructionsNone,
		LogMessages:             m.LogMessages,
		LogMessagesNone:         m.LogMessagesNone,
		PreTokenBalances:        preTok,
		PostTokenBalances:       postTok,
		Rewards:                 rewards,
		RewardsNone:             m.RewardsNone,
		LoadedWritableAddresses: writable,
		LoadedReadonlyAddresses: readonly,
		ReturnData:              projectReturnData(m.ReturnData),
		ReturnDataNone:          m.ReturnData == nil,
		ComputeUnitsConsumed:    m.ComputeUnitsConsumed,
	}
}

func projectTransactionInfo(t TransactionInfo) *pb.SubscribeUpdateTransactionInfo {
	return &pb.SubscribeUpdateTransactionInfo{
		Signature:   t.Signature[:],
		IsVote:      t.IsVote,
		Transaction: projectTransactionBody(t.Transaction),
		Meta:        projectMeta(t.Meta),
		Index:       t.Index,
	}
}

func projectTransaction(e Event) *pb.SubscribeUpdateTransaction {
	return &pb.SubscribeUpdateTransaction{
		Transaction: projectTransactionInfo(e.Transaction),
		Slot:        e.Slot,
	}
}

func projectBlockMeta(e Event) *pb.SubscribeUpdateBlockMeta {
	b := e.BlockMeta
	return &pb.SubscribeUpdateBlockMeta{
		Slot:                     b.Slot,
		Blockhash:                b.Blockhash,
		Rewards:                  projectRewards(b.Rewards),
		BlockTime:                b.BlockTime,
		BlockHeight:              b.BlockHeight,
		ParentSlot:               b.ParentSlot,
		ParentBlockhash:          b.ParentBlockhash,
		ExecutedTransactionCount: b.ExecutedTransactionCount,
	}
}

func projectBlock(e Event) *pb.SubscribeUpdateBlock {
	b := e.BlockMeta
	txs := make([]*pb.SubscribeUpdateTransactionInfo, len(e.BlockTransactions))
	for i, t := range e.BlockTransactions {
		txs[i] = projectTransactionInfo(t)
	}
	return &pb.SubscribeUpdateBlock{
		Slot:            b.Slot,
		Blockhash:       b.Blockhash,
		Rewards:         projectRewards(b.Rewards),
		BlockTime:       b.BlockTime,
		BlockHeight:     b.BlockHeight,
		Transactions:    txs,
		ParentSlot:      b.ParentSlot,
		ParentBlockhash: b.ParentBlockhash,
	}
}
