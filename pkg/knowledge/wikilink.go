package knowledge

// WikiLink renders the plain link form [[name]].
func WikiLink(name string) string {
	return "[[" + name + "]]"
}

// AliasLinkPrefix renders the opening of an aliased link, [[name|.
func AliasLinkPrefix(name string) string {
	return "[[" + name + "|"
}
