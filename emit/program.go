// Package emit lowers a resolved contract IR to a stack-machine target
// (§4.5): a dispatch-prologue approval program, a no-op clear program, and
// a content-addressed digest over the result, grounded on the teacher's
// server/token.go for the optional build-manifest signing step.
package emit

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/folidity/folidity/config"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/internal/ferrors"
	"github.com/folidity/folidity/ir"
	"github.com/folidity/folidity/span"
)

// Program is the emitter's output: the two textual bytecode artifacts §6
// says `compile` writes, plus the content digest and (if signing was
// requested) a signed manifest.
type Program struct {
	Approval string
	Clear    string
	Digest   [32]byte
	Manifest string // empty unless config.Config.SigningKey was set
}

// Emit lowers c to a Program. An internal panic during lowering is
// reported to sink as a KindInternal diagnostic and returned as a fatal
// error together with an empty Program (see reportPanics); an unsupported
// binary operator is lowered to a comment line with no diagnostic.
func Emit(c *ir.ContractDefinition, sink *diag.Sink, cfg config.Config) (Program, error) {
	e := &emitter{c: c, sink: sink, boxPrefix: cfg.BoxNamePrefix}

	var approval *asm
	err := reportPanics(sink, func() { approval = e.emitApproval() })
	if err != nil {
		return Program{}, err
	}
	clear := emitClear()

	p := Program{Approval: approval.String(), Clear: clear.String()}
	p.Digest = blake2b.Sum256([]byte(p.Approval))

	if len(cfg.SigningKey) > 0 {
		manifest, err := signManifest(p.Digest, cfg.SigningKey)
		if err != nil {
			return Program{}, fmt.Errorf("emit: sign manifest: %w", err)
		}
		p.Manifest = manifest
	}

	return p, nil
}

// signManifest produces a JWT attesting to a specific compiler invocation's
// output digest (§4.5: "sign a build manifest ... so a driver can verify an
// artifact was produced by a specific compiler invocation without
// re-running it"), using the same jwt.NewWithClaims/SignedString shape the
// teacher's session tokens use.
func signManifest(digest [32]byte, key []byte) (string, error) {
	claims := jwt.MapClaims{
		"iss":    "folidity",
		"iat":    time.Now().Unix(),
		"jti":    uuid.New().String(),
		"digest": fmt.Sprintf("%x", digest),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(key)
}

// VerifyManifest checks that manifest was signed with key and attests to
// digest, returning an error describing why it does not if not.
func VerifyManifest(manifest string, key []byte, digest [32]byte) error {
	tok, err := jwt.Parse(manifest, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer("folidity"))
	if err != nil {
		return err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("emit: manifest: unexpected claims type")
	}
	got, _ := claims["digest"].(string)
	if got != fmt.Sprintf("%x", digest) {
		return fmt.Errorf("emit: manifest digest mismatch")
	}
	return nil
}

// reportPanics recovers an internal emitter panic (e.g. a malformed layout
// invariant) into the one fatal diagnostic kind the pipeline is allowed to
// abort on (§7: "a single fatal invariant violation ... is allowed to
// terminate the pipeline with a distinct kind"), rather than letting it
// crash the whole compiler process.
func reportPanics(sink *diag.Sink, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			sink.Addf(diag.Error, diag.KindInternal, span.Zero, "emitter: %v", r)
			err = ferrors.Fatal("emit: internal error: %v", r)
		}
	}()
	fn()
	return nil
}
