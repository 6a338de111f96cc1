package ksolve

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/slicepuzzle"
)

type rawSet struct {
	name             string
	pieceCount       int
	orientationCount int
}

// rawTransformation is one (perm, ori) pair per declared set, in
// declaration order, with 1-indexed permutation entries exactly as the
// text format carries them.
type rawTransformation [][2][]int

type rawMove struct {
	name  string
	xform rawTransformation
}

type rawFields struct {
	name       string
	sets       []rawSet
	moves      []rawMove
	symmetries []rawMove
}

// Load parses and validates a KSolve-compatible puzzle definition from r.
//
// Format (one token-separated field per line, blank lines ignored):
//
//	Name <puzzle name>
//	Set <set name> <piece_count> <orientation_count>
//	...
//	Move <move name>
//	<set name>
//	<piece_count 1-indexed permutation entries>
//	<piece_count orientation deltas>
//	... (repeated per declared set, in declaration order)
//	End
//	Symmetry <symmetry name>
//	... (same per-set shape as Move)
//	End
//
// Blank lines are skipped everywhere, so a set has no empty form: every
// set's permutation and orientation lines must list all piece_count
// entries, and an identity action on a set is written out in full
// (1 2 ... n, then n zeros). The set-name line inside a Move or Symmetry
// block is read but not checked; sets are matched by position, in
// declaration order.
func Load(r io.Reader, opts ...LoadOption) (PuzzleDef, error) {
	cfg := newLoadConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	fields, err := scan(r)
	if err != nil {
		return PuzzleDef{}, err
	}
	return build(fields, cfg)
}

func scan(r io.Reader) (rawFields, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var fields rawFields
	var lineNo int
	nextLine := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	for {
		line, ok := nextLine()
		if !ok {
			break
		}
		tokens := strings.Fields(line)
		switch tokens[0] {
		case "Name":
			if len(tokens) < 2 {
				return rawFields{}, fmt.Errorf("%w: line %d: Name needs an argument", ErrSyntax, lineNo)
			}
			fields.name = strings.Join(tokens[1:], " ")
		case "Set":
			if len(tokens) != 4 {
				return rawFields{}, fmt.Errorf("%w: line %d: Set needs name, piece_count, orientation_count", ErrSyntax, lineNo)
			}
			pieceCount, err := strconv.Atoi(tokens[2])
			if err != nil {
				return rawFields{}, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
			}
			orientationCount, err := strconv.Atoi(tokens[3])
			if err != nil {
				return rawFields{}, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
			}
			fields.sets = append(fields.sets, rawSet{name: tokens[1], pieceCount: pieceCount, orientationCount: orientationCount})
		case "Move", "Symmetry":
			if len(tokens) != 2 {
				return rawFields{}, fmt.Errorf("%w: line %d: %s needs exactly one name", ErrSyntax, lineNo, tokens[0])
			}
			move, err := scanMoveBody(tokens[1], fields.sets, nextLine, &lineNo)
			if err != nil {
				return rawFields{}, err
			}
			if tokens[0] == "Move" {
				fields.moves = append(fields.moves, move)
			} else {
				fields.symmetries = append(fields.symmetries, move)
			}
		default:
			return rawFields{}, fmt.Errorf("%w: line %d: unrecognized keyword %q", ErrSyntax, lineNo, tokens[0])
		}
	}
	if err := sc.Err(); err != nil {
		return rawFields{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return fields, nil
}

func scanMoveBody(name string, sets []rawSet, nextLine func() (string, bool), lineNo *int) (rawMove, error) {
	xform := make(rawTransformation, 0, len(sets))
	for range sets {
		setLine, ok := nextLine()
		if !ok {
			return rawMove{}, fmt.Errorf("%w: line %d: move %q ended early", ErrSyntax, *lineNo, name)
		}
		permLine, ok := nextLine()
		if !ok {
			return rawMove{}, fmt.Errorf("%w: line %d: move %q missing permutation line for set %q", ErrSyntax, *lineNo, name, setLine)
		}
		oriLine, ok := nextLine()
		if !ok {
			return rawMove{}, fmt.Errorf("%w: line %d: move %q missing orientation line for set %q", ErrSyntax, *lineNo, name, setLine)
		}
		perm, err := parseInts(permLine)
		if err != nil {
			return rawMove{}, fmt.Errorf("%w: line %d: %v", ErrSyntax, *lineNo, err)
		}
		ori, err := parseInts(oriLine)
		if err != nil {
			return rawMove{}, fmt.Errorf("%w: line %d: %v", ErrSyntax, *lineNo, err)
		}
		xform = append(xform, [2][]int{perm, ori})
	}
	endLine, ok := nextLine()
	if !ok || endLine != "End" {
		return rawMove{}, fmt.Errorf("%w: line %d: move %q not terminated with End", ErrSyntax, *lineNo, name)
	}
	return rawMove{name: name, xform: xform}, nil
}

func parseInts(line string) ([]int, error) {
	tokens := strings.Fields(line)
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// build validates rawFields (mirroring the source's
// TryFrom<KSolveFields> for KSolve) and assembles a branded PuzzleDef.
func build(fields rawFields, cfg *loadConfig) (PuzzleDef, error) {
	if len(fields.sets) == 0 {
		return PuzzleDef{}, fmt.Errorf("%w: puzzle declares no sets", ErrSyntax)
	}

	seenSetNames := make(map[string]bool, len(fields.sets))
	defs := make([]orbit.OrbitDef, len(fields.sets))
	for i, s := range fields.sets {
		if seenSetNames[s.name] {
			return PuzzleDef{}, fmt.Errorf("%w: set %q", ErrDuplicateName, s.name)
		}
		seenSetNames[s.name] = true

		def, err := orbit.NewOrbitDef(s.pieceCount, s.orientationCount)
		if err != nil {
			if errors.Is(err, orbit.ErrPieceCountTooLarge) {
				return PuzzleDef{}, fmt.Errorf("%w: set %q: %v", ErrPieceCountTooLarge, s.name, err)
			}
			return PuzzleDef{}, fmt.Errorf("ksolve: set %q: %w", s.name, err)
		}
		defs[i] = def
	}

	allMoves := make([]rawMove, 0, len(fields.moves)+len(fields.symmetries))
	allMoves = append(allMoves, fields.moves...)
	allMoves = append(allMoves, fields.symmetries...)

	seenMoveNames := make(map[string]bool, len(allMoves))
	for _, m := range allMoves {
		if seenMoveNames[m.name] {
			return PuzzleDef{}, fmt.Errorf("%w: move %q", ErrDuplicateName, m.name)
		}
		seenMoveNames[m.name] = true

		if err := validateTransformation(m, fields.sets); err != nil {
			return PuzzleDef{}, err
		}
	}

	// Permute declaration order into canonical sorted order, remembering
	// the permutation so each move's per-set transformation can be
	// reordered identically.
	order := sortedOrder(defs)
	sortedDefs := make([]orbit.OrbitDef, len(defs))
	sortedSetNames := make([]string, len(defs))
	for newIdx, oldIdx := range order {
		sortedDefs[newIdx] = defs[oldIdx]
		sortedSetNames[newIdx] = fields.sets[oldIdx].name
	}
	orbitDefs := orbit.NewSortedOrbitDefs(sortedDefs)

	classOf := make(map[string]int)
	classIndex := func(name string) int {
		base := BaseMoveName(name)
		if idx, ok := classOf[base]; ok {
			return idx
		}
		idx := len(classOf)
		classOf[base] = idx
		return idx
	}

	toBuffer := func(m rawMove) slicepuzzle.Buffer {
		perOrbit := make([][2][]byte, len(order))
		for newIdx, oldIdx := range order {
			perm, ori := m.xform[oldIdx][0], m.xform[oldIdx][1]
			permBytes := make([]byte, len(perm))
			for j, p := range perm {
				permBytes[j] = byte(p - 1)
			}
			oriBytes := make([]byte, len(ori))
			for j, o := range ori {
				oriBytes[j] = byte(o)
			}
			perOrbit[newIdx] = [2][]byte{permBytes, oriBytes}
		}
		return slicepuzzle.FromOrbitBytes(perOrbit, orbitDefs)
	}

	// expandMoves turns each declared generator into one Move per power:
	// self-compose the declared transformation until it returns to
	// identity, emitting every intermediate power (1 .. order-1) as its
	// own named, classed Move, per spec.md §4.4 — a search over single
	// quarter turns could otherwise never choose "U2" or "U'" as one move.
	expandMoves := func(raw []rawMove) ([]Move, error) {
		var out []Move
		for _, m := range raw {
			buf := toBuffer(m)
			ord, err := moveOrder(buf, orbitDefs, cfg.maxGeneratorOrder)
			if err != nil {
				return nil, fmt.Errorf("move %q: %w", m.name, err)
			}
			base := BaseMoveName(m.name)
			class := classIndex(base)

			cur := buf.Clone()
			for power := 1; power < ord; power++ {
				out = append(out, Move{
					Name:           PrintableName(base, power, ord),
					Transformation: cur,
					Order:          ord,
					Class:          class,
				})
				next := slicepuzzle.Identity(orbitDefs)
				next.ReplaceCompose(cur, buf, orbitDefs)
				cur = next
			}
		}
		return out, nil
	}

	// Symmetries are puzzle automorphisms consumed outside this core
	// (spec.md §3), not generators the search chooses moves from, so
	// they are kept one-to-one with their declaration rather than
	// expanded into powers.
	toSymmetries := func(raw []rawMove) ([]Move, error) {
		out := make([]Move, len(raw))
		for i, m := range raw {
			buf := toBuffer(m)
			ord, err := moveOrder(buf, orbitDefs, cfg.maxGeneratorOrder)
			if err != nil {
				return nil, fmt.Errorf("symmetry %q: %w", m.name, err)
			}
			out[i] = Move{Name: m.name, Transformation: buf, Order: ord, Class: classIndex(m.name)}
		}
		return out, nil
	}

	moves, err := expandMoves(fields.moves)
	if err != nil {
		return PuzzleDef{}, err
	}
	symmetries, err := toSymmetries(fields.symmetries)
	if err != nil {
		return PuzzleDef{}, err
	}

	return PuzzleDef{
		Name:       fields.name,
		OrbitDefs:  orbitDefs,
		OrbitNames: sortedSetNames,
		Moves:      moves,
		Symmetries: symmetries,
	}, nil
}

func validateTransformation(m rawMove, sets []rawSet) error {
	if len(m.xform) != len(sets) {
		return fmt.Errorf("%w: move %q has %d sets, puzzle declares %d", ErrSetCountMismatch, m.name, len(m.xform), len(sets))
	}
	for i, set := range sets {
		perm, ori := m.xform[i][0], m.xform[i][1]
		if len(perm) != set.pieceCount || len(ori) != set.pieceCount {
			return fmt.Errorf("%w: move %q set %q expects %d pieces, got %d perm / %d ori", ErrPieceCountMismatch, m.name, set.name, set.pieceCount, len(perm), len(ori))
		}
		covered := make([]bool, set.pieceCount)
		for j := 0; j < set.pieceCount; j++ {
			if ori[j] < 0 || ori[j] >= set.orientationCount {
				return fmt.Errorf("%w: move %q set %q: delta %d not in [0,%d)", ErrOrientationDeltaOutOfRange, m.name, set.name, ori[j], set.orientationCount)
			}
			p := perm[j]
			if p < 1 || p > set.pieceCount || covered[p-1] {
				return fmt.Errorf("%w: move %q set %q: entry %d", ErrNonBijectivePermutation, m.name, set.name, p)
			}
			covered[p-1] = true
		}
	}
	return nil
}

// sortedOrder returns a permutation of indices 0..len(defs) that sorts
// defs ascending by orbit.OrbitDef.Less, using a stable sort so that two
// sets with an identical (piece_count, orientation_count) keep their
// declared relative order.
func sortedOrder(defs []orbit.OrbitDef) []int {
	order := make([]int, len(defs))
	for i := range order {
		order[i] = i
	}
	// Insertion sort: orbit counts are always small (a handful of sets
	// per puzzle), so O(n^2) is simpler than importing sort for a stable
	// comparator over a derived index slice.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && defs[order[j]].Less(defs[order[j-1]]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}

func moveOrder(move slicepuzzle.Buffer, orbitDefs orbit.SortedOrbitDefs, maxOrder int) (int, error) {
	id := slicepuzzle.Identity(orbitDefs)
	cur := move.Clone()
	order := 1
	for !cur.Equal(id) {
		if order >= maxOrder {
			return 0, ErrGeneratorOrderExceeded
		}
		next := slicepuzzle.Identity(orbitDefs)
		next.ReplaceCompose(cur, move, orbitDefs)
		cur = next
		order++
	}
	return order, nil
}
