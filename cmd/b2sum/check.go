package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/gtank/blake2b/blake2b"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	taggedLine   = regexp.MustCompile(`^BLAKE2b(?:-(\d+))? \((.*)\) = ([0-9a-fA-F]+)$`)
	untaggedLine = regexp.MustCompile(`^([0-9a-fA-F]+) [ *](.*)$`)
)

// checkEntry is one parsed line of a checksum list.
type checkEntry struct {
	name string
	sum  []byte
}

// parseCheckLine accepts both the default and the BSD-style format. The
// digest size is taken from the line itself.
func parseCheckLine(line string) (*checkEntry, error) {
	var name, digest string
	bits := 0
	if m := taggedLine.FindStringSubmatch(line); m != nil {
		bits = 8 * blake2b.Size
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, err
			}
			bits = n
		}
		name, digest = m[2], m[3]
	} else if m := untaggedLine.FindStringSubmatch(line); m != nil {
		digest, name = m[1], m[2]
		bits = 4 * len(digest)
	} else {
		return nil, errors.New("improperly formatted checksum line")
	}

	sum, err := hex.DecodeString(digest)
	if err != nil {
		return nil, errors.Wrap(err, "invalid checksum")
	}
	if len(sum)*8 != bits || len(sum) < blake2b.DigestBytesMin || len(sum) > blake2b.DigestBytesMax {
		return nil, errors.Errorf("invalid checksum length %d bits", len(sum)*8)
	}
	return &checkEntry{name: name, sum: sum}, nil
}

// checkStats tallies the outcome of a check run.
type checkStats struct {
	checked, mismatched, unreadable, malformed int
}

// checkFiles verifies every checksum listed in the given files and prints
// "name: OK" or "name: FAILED" for each.
func checkFiles(w io.Writer, stdin io.Reader, lists []string, opts *options) error {
	var stats checkStats
	for _, list := range lists {
		if err := checkList(w, stdin, list, opts, &stats); err != nil {
			return err
		}
	}

	switch {
	case stats.checked == 0:
		return errors.Errorf("no properly formatted checksum lines found (%d skipped)", stats.malformed)
	case stats.mismatched > 0 || stats.unreadable > 0:
		return errors.Errorf("%d computed checksums did NOT match, %d listed files could not be read", stats.mismatched, stats.unreadable)
	}
	return nil
}

func checkList(w io.Writer, stdin io.Reader, list string, opts *options, stats *checkStats) error {
	r := stdin
	if list != "-" {
		f, err := os.Open(list)
		if err != nil {
			return errors.Wrap(err, "open checksum list")
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		entry, err := parseCheckLine(scanner.Text())
		if err == nil && opts.lengthSet && len(entry.sum) != opts.cfg.Size {
			err = errors.Errorf("checksum is %d bits, want %d", len(entry.sum)*8, opts.cfg.Size*8)
		}
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"list": list, "line": lineno}).Warn("Skipping checksum line")
			stats.malformed++
			continue
		}
		stats.checked++

		cfg := opts.cfg
		cfg.Size = len(entry.sum)
		sum, err := sumFile(entry.name, stdin, &cfg)
		switch {
		case err != nil:
			logrus.WithError(err).WithField("file", entry.name).Error("Failed to hash file")
			stats.unreadable++
			fmt.Fprintf(w, "%s: FAILED open or read\n", entry.name)
		case !bytes.Equal(sum, entry.sum):
			stats.mismatched++
			fmt.Fprintf(w, "%s: FAILED\n", entry.name)
		default:
			fmt.Fprintf(w, "%s: OK\n", entry.name)
		}
	}
	return errors.Wrapf(scanner.Err(), "read %s", list)
}
