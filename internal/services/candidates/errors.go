package candidates

// ProviderError is returned by candidate providers
type ProviderError string

// Error implements the error interface
func (e ProviderError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    ProviderError = "config cannot be nil"
	ErrNilPicker    ProviderError = "picker cannot be nil"
	ErrNilInput     ProviderError = "input cannot be nil"
	ErrInvalidRange ProviderError = "radius and limit cannot be negative"
)
