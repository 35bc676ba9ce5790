package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/pornin/go-kyber/kyber"
)

const (
	pkFlag = "pk"
	skFlag = "sk"
	ctFlag = "ct"

	// Exit code for a shared secret mismatch.
	mismatchExitCode = 2
)

func commands() []*cli.Command {
	iterations := &cli.IntFlag{
		Name:  iterationsFlag,
		Usage: "Number of KEM round trips",
	}
	return []*cli.Command{
		{
			Name:   "selftest",
			Usage:  "Run key generation, encapsulation and decapsulation and compare the shared secrets",
			Flags:  []cli.Flag{iterations},
			Action: selftest,
		},
		{
			Name:  "keygen",
			Usage: "Generate a key pair and write both keys as hex",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: pkFlag, Usage: "Output file for the public key", Required: true},
				&cli.StringFlag{Name: skFlag, Usage: "Output file for the secret key", Required: true},
			},
			Action: keygen,
		},
		{
			Name:  "encaps",
			Usage: "Encapsulate a shared secret to a public key; prints the shared secret",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: pkFlag, Usage: "Input file with the public key", Required: true},
				&cli.StringFlag{Name: ctFlag, Usage: "Output file for the ciphertext", Required: true},
			},
			Action: encaps,
		},
		{
			Name:  "decaps",
			Usage: "Decapsulate a ciphertext with a secret key; prints the shared secret",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: skFlag, Usage: "Input file with the secret key", Required: true},
				&cli.StringFlag{Name: ctFlag, Usage: "Input file with the ciphertext", Required: true},
			},
			Action: decaps,
		},
		{
			Name:  "bench",
			Usage: "Run KEM round trips concurrently and report throughput",
			Flags: []cli.Flag{
				iterations,
				&cli.IntFlag{Name: workersFlag, Usage: "Number of concurrent workers", Value: 4},
			},
			Action: bench,
		},
	}
}

// One full KEM round trip; returns the key pair, ciphertext and both
// shared secrets.
type roundTrip struct {
	sk, pk, ct, ss1, ss2 []byte
}

func runRoundTrip(p *kyber.Params) (*roundTrip, error) {
	var r roundTrip
	var err error
	if r.sk, r.pk, err = kyber.KeyGen(p, nil); err != nil {
		return nil, errors.Wrap(err, "key generation failed")
	}
	if r.ct, r.ss1, err = kyber.Encapsulate(nil, r.pk); err != nil {
		return nil, errors.Wrap(err, "encapsulation failed")
	}
	if r.ss2, err = kyber.Decapsulate(r.sk, r.ct); err != nil {
		return nil, errors.Wrap(err, "decapsulation failed")
	}
	return &r, nil
}

func selftest(c *cli.Context) error {
	s := settingsFromContext(c)
	n, err := iterationsFromContext(c)
	if err != nil {
		return err
	}
	p := s.params
	s.log.Info().
		Str("params", p.Name()).
		Str("suite", kyber.SymmetricSuite()).
		Bool("aesHardware", kyber.HasAESHardware()).
		Msg("Starting self-test")
	s.log.Debug().
		Int("k", p.K()).
		Int("pk", p.PublicKeySize()).
		Int("sk", p.SecretKeySize()).
		Int("ct", p.CiphertextSize()).
		Int("ss", p.SharedSecretSize()).
		Msg("Sizes")

	for i := 0; i < n; i++ {
		r, err := runRoundTrip(p)
		if err != nil {
			return errors.Wrapf(err, "iteration %d", i)
		}
		s.log.Debug().
			Int("iteration", i).
			Str("sk", hex.EncodeToString(r.sk)).
			Str("pk", hex.EncodeToString(r.pk)).
			Str("ct", hex.EncodeToString(r.ct)).
			Str("ssA", hex.EncodeToString(r.ss1)).
			Str("ssB", hex.EncodeToString(r.ss2)).
			Msg("Round trip")
		if !bytes.Equal(r.ss1, r.ss2) {
			s.log.Error().Int("iteration", i).Msg("Shared secrets differ")
			return cli.Exit(fmt.Sprintf("self-test failed at iteration %d", i), mismatchExitCode)
		}
	}
	s.log.Info().Int("iterations", n).Msg("Self-test passed")
	fmt.Fprintln(c.App.Writer, "OK")
	return nil
}

func readHexFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}
	b, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, errors.Wrapf(err, "%s is not valid hex", path)
	}
	return b, nil
}

func writeHexFile(path string, b []byte, perm os.FileMode) error {
	data := hex.EncodeToString(b) + "\n"
	if err := os.WriteFile(path, []byte(data), perm); err != nil {
		return errors.Wrapf(err, "cannot write %s", path)
	}
	return nil
}

// checkParams rejects a key whose size does not match an explicitly
// selected parameter set.
func checkParams(s *settings, what string, got int, want int) error {
	if s.paramsSet && got != want {
		return errors.Errorf("%s has %d bytes, %s expects %d",
			what, got, s.params.Name(), want)
	}
	return nil
}

func keygen(c *cli.Context) error {
	s := settingsFromContext(c)
	sk, pk, err := kyber.KeyGen(s.params, nil)
	if err != nil {
		return errors.Wrap(err, "key generation failed")
	}
	if err := writeHexFile(c.String(pkFlag), pk, 0644); err != nil {
		return err
	}
	if err := writeHexFile(c.String(skFlag), sk, 0600); err != nil {
		return err
	}
	s.log.Info().
		Str("params", s.params.Name()).
		Str("pk", c.String(pkFlag)).
		Str("sk", c.String(skFlag)).
		Msg("Key pair generated")
	return nil
}

func encaps(c *cli.Context) error {
	s := settingsFromContext(c)
	pk, err := readHexFile(c.String(pkFlag))
	if err != nil {
		return err
	}
	if err := checkParams(s, "public key", len(pk), s.params.PublicKeySize()); err != nil {
		return err
	}
	ct, ss, err := kyber.Encapsulate(nil, pk)
	if err != nil {
		return errors.Wrap(err, "encapsulation failed")
	}
	if err := writeHexFile(c.String(ctFlag), ct, 0644); err != nil {
		return err
	}
	s.log.Debug().Int("ct", len(ct)).Msg("Ciphertext written")
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(ss))
	return nil
}

func decaps(c *cli.Context) error {
	s := settingsFromContext(c)
	sk, err := readHexFile(c.String(skFlag))
	if err != nil {
		return err
	}
	if err := checkParams(s, "secret key", len(sk), s.params.SecretKeySize()); err != nil {
		return err
	}
	ct, err := readHexFile(c.String(ctFlag))
	if err != nil {
		return err
	}
	ss, err := kyber.Decapsulate(sk, ct)
	if err != nil {
		return errors.Wrap(err, "decapsulation failed")
	}
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(ss))
	return nil
}

func bench(c *cli.Context) error {
	s := settingsFromContext(c)
	n, err := iterationsFromContext(c)
	if err != nil {
		return err
	}
	workers := c.Int(workersFlag)
	if workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", workers)
	}
	if workers > n {
		workers = n
	}

	var done int64
	start := time.Now()
	g, ctx := errgroup.WithContext(c.Context)
	for w := 0; w < workers; w++ {
		// Iterations are spread as evenly as possible.
		count := n / workers
		if w < n%workers {
			count++
		}
		g.Go(func() error {
			for i := 0; i < count; i++ {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				r, err := runRoundTrip(s.params)
				if err != nil {
					return err
				}
				if !bytes.Equal(r.ss1, r.ss2) {
					return errors.New("shared secrets differ")
				}
				atomic.AddInt64(&done, 1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "benchmark failed")
	}
	elapsed := time.Since(start)

	s.log.Info().
		Str("params", s.params.Name()).
		Int("workers", workers).
		Int64("roundTrips", done).
		Dur("elapsed", elapsed).
		Float64("perSecond", float64(done)/elapsed.Seconds()).
		Msg("Benchmark finished")
	fmt.Fprintf(c.App.Writer, "%d round trips in %s\n", done, elapsed)
	return nil
}
