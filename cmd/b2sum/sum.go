package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/gtank/blake2b/blake2b"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// sumReader streams r through a digest configured by cfg.
func sumReader(r io.Reader, cfg *blake2b.Config) ([]byte, int64, error) {
	d, err := blake2b.New(cfg)
	if err != nil {
		return nil, 0, err
	}
	n, err := io.Copy(d, r)
	if err != nil {
		return nil, n, err
	}
	sum, err := d.Final()
	return sum, n, err
}

// sumFile hashes the named file, or stdin for "-".
func sumFile(name string, stdin io.Reader, cfg *blake2b.Config) ([]byte, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	sum, n, err := sumReader(r, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	logrus.WithFields(logrus.Fields{"file": name, "bytes": n, "size": cfg.Size}).Debug("Hashed input")
	return sum, nil
}

// algorithmTag is the BSD-style algorithm name for a digest size in bytes.
func algorithmTag(size int) string {
	if size == blake2b.Size {
		return "BLAKE2b"
	}
	return fmt.Sprintf("BLAKE2b-%d", size*8)
}

func formatLine(w io.Writer, name string, sum []byte, tag bool) error {
	var err error
	if tag {
		_, err = fmt.Fprintf(w, "%s (%s) = %s\n", algorithmTag(len(sum)), name, hex.EncodeToString(sum))
	} else {
		_, err = fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(sum), name)
	}
	return err
}

// hashFiles prints one checksum line per file. A file that cannot be read is
// reported and skipped; the returned error then summarizes the failures.
func hashFiles(w io.Writer, stdin io.Reader, files []string, opts *options) error {
	failed := 0
	for _, name := range files {
		sum, err := sumFile(name, stdin, &opts.cfg)
		if err != nil {
			logrus.WithError(err).WithField("file", name).Error("Failed to hash file")
			failed++
			continue
		}
		if err := formatLine(w, name, sum, opts.tag); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files could not be read", failed, len(files))
	}
	return nil
}
