package model

// Session is the client-held identity, rehydrated at launch and kept as a
// single source of truth in the session store.
type Session struct {
	AccountID string `json:"accountId" redis:"account_id"`
	Email     string `json:"email" redis:"email"`
	Token     string `json:"token" redis:"token"`
	Role      string `json:"role" redis:"role"`
	Avatar    string `json:"avatar" redis:"avatar"`
}
