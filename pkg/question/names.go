package question

// Name is the key a question's answer is stored under in Inputs.
type Name string

const (
	AppName           Name = "app-name"
	Folder            Name = "folder"
	Solution          Name = "solution"
	CreateFromScratch Name = "scratch"
	Samples           Name = "samples"
	EnvName           Name = "env-name"
	EnvLocal          Name = "env-local"
	EnvSideLoading    Name = "env-sideloading"
)

// Names returns every known question name in wizard order.
func Names() []Name {
	return []Name{
		Solution,
		CreateFromScratch,
		Samples,
		Folder,
		AppName,
		EnvName,
		EnvLocal,
		EnvSideLoading,
	}
}

// Valid reports whether n is one of the known question names.
func (n Name) Valid() bool {
	for _, known := range Names() {
		if n == known {
			return true
		}
	}
	return false
}
