package encoder

import "text/template"

// templateFuncMap returns the functions available to the header templates.
func templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"hexBody":    hexBody,
		"stringBody": stringBody,
	}
}
