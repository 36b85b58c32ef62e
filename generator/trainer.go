package generator

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/soroban/rule"
)

// TrainerExample is the display projection of an Example: the signed step
// strings and the numeric start and answer.
type TrainerExample struct {
	Start  int      `json:"start"`
	Steps  []string `json:"steps"`
	Answer int      `json:"answer"`
}

// ToTrainerFormat projects ex for a presentation layer. Single-rod steps
// render as signed integers ("+3", "-7"); multi-rod steps render the shared
// sign followed by the move magnitudes most significant rod first.
func ToTrainerFormat(ex rule.Example) TrainerExample {
	out := TrainerExample{
		Start:  rule.StateToNumber(ex.Start),
		Steps:  make([]string, len(ex.Steps)),
		Answer: rule.StateToNumber(ex.Answer),
	}
	for i, st := range ex.Steps {
		if len(ex.Start) == 1 && len(st.Moves) == 1 {
			out.Steps[i] = st.Moves[0].Action.String()
			continue
		}
		out.Steps[i] = FormatStep(st)
	}
	return out
}

// FormatStep renders a multi-rod step: its sign and the concatenated
// magnitudes, rods without a move contributing a 0 below the leading rod.
func FormatStep(st rule.Step) string {
	var b strings.Builder
	if st.Sign() < 0 {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	top := -1
	for _, m := range st.Moves {
		top = max(top, m.Position)
	}
	if top < 0 {
		b.WriteByte('0')
		return b.String()
	}
	for p := top; p >= 0; p-- {
		m, ok := st.MoveAt(p)
		if !ok {
			b.WriteByte('0')
			continue
		}
		b.WriteString(strconv.Itoa(m.Action.Magnitude()))
	}
	return b.String()
}
