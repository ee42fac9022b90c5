package util

// UniqueStrings keeps the first occurrence of every non-empty string not in ignoreList
func UniqueStrings(values []string, ignoreList ...string) []string {
	present := make(map[string]bool, len(values)+len(ignoreList))
	list := make([]string, 0, len(values))

	for _, ignoreString := range ignoreList {
		present[ignoreString] = true
	}

	for _, item := range values {
		if item == "" || present[item] {
			continue
		}

		present[item] = true
		list = append(list, item)
	}

	return list
}
