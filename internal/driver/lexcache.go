package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"kslang/internal/diag"
	"kslang/internal/lexer"
	"kslang/internal/source"
	"kslang/internal/token"
)

// Current schema version - increment when CachePayload format changes
const lexCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты токенизации по content-hash источника.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedToken is the serialized form of one token. Sym не кэшируется:
// интернер пересобирается при восстановлении.
type CachedToken struct {
	Kind  uint8
	Start uint32
	End   uint32
	Line  uint32
	Text  string
	Val   float64
}

// CachedError is the serialized form of one lexical error.
type CachedError struct {
	Code  uint16
	Start uint32
	End   uint32
	Line  uint32
	Msg   string
}

// CachePayload stores one tokenization keyed by the source content hash.
type CachePayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Origin string
	Kind   uint8 // source.Kind
	Tokens []CachedToken
	Errors []CachedError
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt returns a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "lex".
	return filepath.Join(c.dir, "lex", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key [32]byte, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
// Returns false when the key is absent or the schema does not match.
func (c *DiskCache) Get(key [32]byte, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, fmt.Errorf("lex cache %s: %w", p, err)
	}
	if out.Schema != lexCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "lex"))
}

// NewCachePayload flattens a Result for serialization.
func NewCachePayload(res *Result) *CachePayload {
	p := &CachePayload{
		Schema: lexCacheSchemaVersion,
		Origin: res.Source.Origin(),
		Kind:   uint8(res.Source.Kind),
		Tokens: make([]CachedToken, 0, len(res.Tokens)),
		Errors: make([]CachedError, 0, len(res.Errors)),
	}
	for _, t := range res.Tokens {
		p.Tokens = append(p.Tokens, CachedToken{
			Kind:  uint8(t.Kind),
			Start: t.Span.Start,
			End:   t.Span.End,
			Line:  t.Line,
			Text:  t.Text,
			Val:   t.Val,
		})
	}
	for _, e := range res.Errors {
		p.Errors = append(p.Errors, CachedError{
			Code:  uint16(e.Code),
			Start: e.Span.Start,
			End:   e.Span.End,
			Line:  e.Line,
			Msg:   e.Msg,
		})
	}
	return p
}

// Restore rebuilds a Result from a cached payload over src.
// Коды Kind валидируются: испорченный кэш не протаскивает мусор.
func (p *CachePayload) Restore(src *source.Source) (*Result, error) {
	bag := diag.NewBag(DefaultMaxDiagnostics)
	interner := source.NewInterner()
	res := &Result{
		Source:   src,
		Interner: interner,
		Symbols:  make(map[string][]source.Span),
		Bag:      bag,
	}
	for _, ct := range p.Tokens {
		k := token.Kind(ct.Kind)
		if !k.IsValid() {
			return nil, fmt.Errorf("lex cache: invalid token kind %d", ct.Kind)
		}
		tok := token.Token{
			Kind: k,
			Span: source.Span{Start: ct.Start, End: ct.End},
			Line: ct.Line,
			Text: ct.Text,
			Val:  ct.Val,
		}
		if k == token.Ident {
			tok.Sym = interner.Intern(ct.Text)
			res.Symbols[ct.Text] = append(res.Symbols[ct.Text], tok.Span)
		}
		res.Tokens = append(res.Tokens, tok)
	}
	for _, ce := range p.Errors {
		lexErr := lexer.LexError{
			Code: diag.Code(ce.Code),
			Span: source.Span{Start: ce.Start, End: ce.End},
			Line: ce.Line,
			Msg:  ce.Msg,
		}
		res.Errors = append(res.Errors, lexErr)
		diag.ReportError(diag.BagReporter{Bag: bag}, lexErr.Code, lexErr.Span, lexErr.Msg)
	}
	return res, nil
}
