package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Random generation: "random number 1-100", "flip a coin", "roll a dice",
// "uuid". Each keystroke re-runs detection, so results deliberately reroll as
// the user types; Enter freezes whatever is displayed by copying it.

var (
	reRandomRange = regexp.MustCompile(`^(?:random|rand|rng)(?:\s+number)?(?:\s+(?:between\s+)?(-?\d+)\s*(?:-|to|and)\s*(-?\d+))?$`)
	reCoin        = regexp.MustCompile(`^(?:flip\s+a\s+coin|flip\s+coin|coin\s+flip|coinflip)$`)
	reDice        = regexp.MustCompile(`^(?:roll\s+a?\s*(?:dice|die)|dice\s+roll|roll)(?:\s+d(\d+))?$`)
	reUUID        = regexp.MustCompile(`^(?:uuid|guid)(?:\s*v?4)?$`)
	rePick        = regexp.MustCompile(`^(?:pick|choose)\s+(.+,.+)$`)
)

func detectRandomWith(deps Deps) func(string) *Result {
	return func(text string) *Result {
		return detectRandom(text, deps)
	}
}

func detectRandom(text string, deps Deps) *Result {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil
	}

	if reUUID.MatchString(s) {
		id := uuid.NewString()
		return &Result{Kind: KindRandom, Display: id}
	}

	if reCoin.MatchString(s) {
		face := "Heads"
		if deps.intn(2) == 1 {
			face = "Tails"
		}
		return &Result{Kind: KindRandom, Display: face}
	}

	if m := reDice.FindStringSubmatch(s); m != nil {
		sides := 6
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 2 {
				return nil
			}
			sides = n
		} else if s == "roll" {
			// Bare "roll" is too ambiguous without dice context.
			return nil
		}
		roll := deps.intn(sides) + 1
		return &Result{
			Kind:    KindRandom,
			Display: strconv.Itoa(roll),
			Detail:  "d" + strconv.Itoa(sides),
		}
	}

	if m := rePick.FindStringSubmatch(s); m != nil {
		var options []string
		for _, o := range strings.Split(m[1], ",") {
			if o = strings.TrimSpace(o); o != "" {
				options = append(options, o)
			}
		}
		if len(options) < 2 {
			return nil
		}
		return &Result{
			Kind:    KindRandom,
			Display: options[deps.intn(len(options))],
			Detail:  strconv.Itoa(len(options)) + " options",
		}
	}

	if m := reRandomRange.FindStringSubmatch(s); m != nil {
		lo, hi := 1, 100
		if m[1] != "" {
			var err error
			lo, err = strconv.Atoi(m[1])
			if err != nil {
				return nil
			}
			hi, err = strconv.Atoi(m[2])
			if err != nil {
				return nil
			}
			if lo > hi {
				lo, hi = hi, lo
			}
		}
		n := lo + deps.intn(hi-lo+1)
		return &Result{
			Kind:    KindRandom,
			Display: strconv.Itoa(n),
			Detail:  strconv.Itoa(lo) + "–" + strconv.Itoa(hi),
		}
	}

	return nil
}
