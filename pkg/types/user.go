package types

// User is a registered account in the user registry. Users are created at
// registration and never mutated or deleted afterwards. The password is
// stored as entered; the store is a local single-user tool and carries the
// original system's plaintext credential check.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
