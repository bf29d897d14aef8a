package signature

// A NameTypePair declares one parameter of a built-in function: its
// name and the type its argument must coerce to.
type NameTypePair = struct {
	VarName string
	VarType string
}

type NamedSignature []NameTypePair

func (ns NamedSignature) String() (result string) {
	for _, v := range ns {
		if result != "" {
			result = result + ", "
		}
		result = result + v.VarName + " " + v.VarType
	}
	result = "(" + result + ")"
	return
}
