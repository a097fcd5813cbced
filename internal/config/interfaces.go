package config

// FileLoader is the interface for reading settings files
//
//go:generate mockery --name=FileLoader --output=./mocks
type FileLoader interface {
	ParseFile(path string) (*FileSettings, error)
}
