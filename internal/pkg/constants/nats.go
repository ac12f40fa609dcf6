package constants

import "time"

// NATS subjects and streams
const (
	StreamSettlement       = "SETTLEMENT"
	StreamSettlementMaxAge = 7 * 24 * time.Hour

	SubjectSettlementAll     = "settlement.>"
	SubjectTransferFinalized = "settlement.transfer.finalized"
)
