package usecases

// PasswordHasher abstracts the password hashing service.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
