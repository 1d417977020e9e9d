package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// Digest computes a BLAKE2b-256 digest over the contents of the given report
// files, in order. Two runs over an unchanged report set share a digest, which
// is what the run-history store keys trend comparisons on.
func Digest(paths []string) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if err := hashFile(h, path); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func hashFile(h io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	// Separate path and content so that renaming a file changes the digest.
	if _, err := fmt.Fprintf(h, "%s\x00", path); err != nil {
		return err
	}
	_, err = io.Copy(h, f)
	return err
}
