package models

type FunctionDoc struct {
	Name string
	Doc  string
}

type ScriptDoc struct {
	Path      string
	RelPath   string
	Name      string
	Functions []FunctionDoc
}
