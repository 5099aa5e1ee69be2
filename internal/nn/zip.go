package nn

import "sync"

// Zip composes two modules in parallel. Both run independently on the two
// halves of a Pair input, and their outputs merge into a single value
// through the caller-supplied Zipper. A Zip is itself a Module, which makes
// sibling sub-networks (multi-head style architectures) composable without
// hardcoding a merge strategy.
//
// The Unzipper must be the exact structural inverse of the Zipper: for all
// a, b, Unzipper(Zipper(a, b)) == (a, b). The combinator cannot verify
// this; a violating pair yields silently wrong gradients.
type Zip[InT, InB, OutT, OutB, Merged any] struct {
	Top Module[InT, OutT]
	Bot Module[InB, OutB]

	// Zipper merges the two branch outputs into one value.
	Zipper func(top OutT, bot OutB) Merged
	// Unzipper splits a merged value (or gradient) back into its halves.
	Unzipper func(merged Merged) (OutT, OutB)

	// Concurrent trains the two branches in parallel goroutines. The
	// branches own disjoint parameters and exchange no data, so results
	// are identical to sequential training.
	Concurrent bool
}

// NewZip zips top and bot together into one module, merging their outputs
// with zipper. unzipper must do exactly the reverse of zipper.
func NewZip[InT, InB, OutT, OutB, Merged any](
	top Module[InT, OutT],
	bot Module[InB, OutB],
	zipper func(OutT, OutB) Merged,
	unzipper func(Merged) (OutT, OutB),
) *Zip[InT, InB, OutT, OutB, Merged] {
	return &Zip[InT, InB, OutT, OutB, Merged]{
		Top:      top,
		Bot:      bot,
		Zipper:   zipper,
		Unzipper: unzipper,
	}
}

// ZipRecord holds both branch records and the merged output of one Zip
// forward pass.
type ZipRecord[OutT, OutB, Merged any] struct {
	Top    Record[OutT]
	Bot    Record[OutB]
	Merged Merged
}

// Output returns the merged output.
func (r *ZipRecord[OutT, OutB, Merged]) Output() Merged { return r.Merged }

// Intermediate evaluates both branches and merges their outputs.
func (z *Zip[InT, InB, OutT, OutB, Merged]) Intermediate(input Pair[InT, InB]) Record[Merged] {
	top := z.Top.Intermediate(input.Top)
	bot := z.Bot.Intermediate(input.Bot)
	return &ZipRecord[OutT, OutB, Merged]{
		Top:    top,
		Bot:    bot,
		Merged: z.Zipper(top.Output(), bot.Output()),
	}
}

// Train unzips the output gradient, trains both branches with their halves,
// and returns the pair of input gradients. The branches carry no data
// dependency, so training order does not matter.
func (z *Zip[InT, InB, OutT, OutB, Merged]) Train(input Pair[InT, InB], rec Record[Merged], grad Merged, rate float64) Pair[InT, InB] {
	r := rec.(*ZipRecord[OutT, OutB, Merged])
	topGrad, botGrad := z.Unzipper(grad)

	var out Pair[InT, InB]
	if z.Concurrent {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			out.Top = z.Top.Train(input.Top, r.Top, topGrad, rate)
		}()
		out.Bot = z.Bot.Train(input.Bot, r.Bot, botGrad, rate)
		wg.Wait()
	} else {
		out.Top = z.Top.Train(input.Top, r.Top, topGrad, rate)
		out.Bot = z.Bot.Train(input.Bot, r.Bot, botGrad, rate)
	}
	return out
}

// Stacker returns a zipper/unzipper pair that concatenates two float64
// vectors and splits them back at topLen. The pair satisfies the inverse
// contract for any top vector of length topLen.
func Stacker(topLen int) (func([]float64, []float64) []float64, func([]float64) ([]float64, []float64)) {
	zipper := func(top, bot []float64) []float64 {
		merged := make([]float64, 0, len(top)+len(bot))
		merged = append(merged, top...)
		return append(merged, bot...)
	}
	unzipper := func(merged []float64) ([]float64, []float64) {
		return merged[:topLen:topLen], merged[topLen:]
	}
	return zipper, unzipper
}
