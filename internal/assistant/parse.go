package assistant

import "strings"

// ParseInput splits line on whitespace into a lower-cased command and its
// arguments. Arguments keep their case. An empty line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	return strings.ToLower(fields[0]), fields[1:]
}
