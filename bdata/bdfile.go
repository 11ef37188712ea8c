package bdata

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

func read(filepath string) ([]string, error) {
	var (
		file *os.File
		err  error
	)
	if file, err = os.Open(filepath); err != nil {
		return nil, errors.Wrapf(err, "open %s", filepath)
	}
	defer file.Close()

	result := make([]string, 0, 32)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		//skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result = append(result, line)
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", filepath)
	}
	return result, nil
}

// parse splits a "brand=display name" line.
func parse(line string) (string, string, error) {
	kv := strings.SplitN(line, "=", 2)
	if len(kv) != 2 {
		return "", "", errors.Errorf("malformed mapping %q", line)
	}
	key, value := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
	if key == "" || value == "" {
		return "", "", errors.Errorf("malformed mapping %q", line)
	}
	return key, value, nil
}
