package ports

// WalletSource yields the configured wallet signers, in list order.
type WalletSource interface {
	Load() ([]Signer, error)
}
