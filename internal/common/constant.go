package common

// Storage keys. Each key holds one JSON document in the key-value store.
const (
	KeyAccounts          = "accounts"
	KeyExperiences       = "experiences"
	KeyPendingQuestions  = "pendingQuestions"
	KeyApprovedQuestions = "approvedQuestions"
	KeySession           = "session"
)
