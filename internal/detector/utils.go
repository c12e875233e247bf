package detector

import (
	"bufio"
	"os"
	"strings"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// firstValue returns the value of the first line in path that starts with
// any of keys followed by '='. Later lines are never read once one matches.
func firstValue(path string, keys ...string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		for _, key := range keys {
			if strings.HasPrefix(line, key+"=") {
				return trimValue(strings.SplitN(line, "=", 2)[1]), nil
			}
		}
	}

	return "", scanner.Err()
}

func trimValue(value string) string {
	value = strings.TrimSpace(value)
	value = strings.Trim(value, `"'`)
	return strings.TrimSpace(value)
}
