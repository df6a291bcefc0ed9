// Package aoc are quick & dirty utilities for solving Advent of Code
// problems.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples finds the sample attached to each function's doc comment.
// A sample with no input reuses the input of the previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "aoc.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

type Puzzle struct {
	year       int
	day        day
	cfg        Config
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return p.cfg.fileOrFetch(p.cfg.inputPath(p.year, p.day.day, "input"), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

// InputString returns the puzzle input as a string.
func (p *Puzzle) InputString() string {
	return string(p.Input())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal().Err(err).Msg("reading input")
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debugf logs at debug level while running a sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		log.Debug().Int("day", p.day.day).Str("part", p.solver.Part).Msgf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatal().Str("func", p.solver.Name).Msg("no sample found")
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods finds the methods named D{day}p{part} on x, which must be
// a pointer to a struct. The methods must have the signature func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatal().Msgf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatal().Str("method", mn).Msg("solver method must be func() any")
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagConfig     string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagConfig, "config", "aoc.yaml", "path to config file")
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
})

func runDay(slvr any, cfg Config, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		cfg:     cfg,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// Run runs the solver methods of slvr, which must be a pointer to a struct
// embedding *Puzzle. src is the solver's source file, from which samples
// are read.
func Run(year int, src []byte, slvr any) {
	initFlags()
	samples, err := extractSamples(src)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	cfg, err := LoadConfig(flagConfig)
	if err != nil {
		log.Fatal().Err(err).Str("path", flagConfig).Msg("loading config")
	}
	days := extractMethods(slvr)

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatal().Int("day", flagCurDay).Msg("no such day")
		}
		runDay(slvr, cfg, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, cfg, year, days[day], samples)
		fmt.Println()
	}
}

func (c Config) request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: MustGet(c.Session())})
	return req
}

func (c Config) fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	log.Info().Str("url", url).Str("file", filename).Msg("fetching")
	body := c.fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func (c Config) fetch(url string) []byte {
	res := MustGet(http.DefaultClient.Do(c.request("GET", url, nil)))
	defer res.Body.Close()
	if res.StatusCode != 200 {
		log.Fatal().Str("url", url).Str("status", res.Status).Msg("bad status fetching")
	}
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
