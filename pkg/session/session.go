package session

// Registry tracks which admin session tokens are currently valid. A
// token present in the registry is valid; absence means invalid. No
// expiry is enforced — a production deployment should add a TTL.
type Registry interface {
	Create() (string, error)
	IsValid(token string) (bool, error)
	Invalidate(token string) error
}
