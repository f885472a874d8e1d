package encoder

// ValidateArrayName reports whether name can be used as the identifier of the
// generated array in a C/C++ source file. The first character must be an
// underscore or an ASCII letter; every character must be an underscore, an
// ASCII digit, or an ASCII letter. The empty string is invalid because it has
// no valid first character.
func ValidateArrayName(name string) bool {
	if len(name) == 0 {
		return false
	}

	first := name[0]
	if !(first == '_' ||
		(first >= 'A' && first <= 'Z') ||
		(first >= 'a' && first <= 'z')) {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c == '_' ||
			(c >= '0' && c <= '9') ||
			(c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z')) {
			return false
		}
	}

	return true
}
