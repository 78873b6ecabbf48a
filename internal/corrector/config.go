package corrector

type Config struct {
	MaxEditDistance  int
	Alphabet         string
	DefaultFrequency int
}

func DefaultConfig() Config {
	return Config{
		MaxEditDistance:  2,
		Alphabet:         "abcdefghijklmnopqrstuvwxyz",
		DefaultFrequency: 1,
	}
}

// Candidate is a transient correction candidate produced during generation.
type Candidate struct {
	Term     string
	Distance int
	Freq     int
}
