package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/bhptsur/internal/config"
	"github.com/katalvlaran/bhptsur/surrogate"
	"github.com/katalvlaran/bhptsur/validate"
	"github.com/katalvlaran/bhptsur/waveform"
)

type seriesJSON struct {
	Re []float64 `json:"re"`
	Im []float64 `json:"im"`
}

type warningJSON struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Index   int    `json:"index"`
}

type resultJSON struct {
	ID       string                `json:"id"`
	Model    string                `json:"model"`
	Warnings []warningJSON         `json:"warnings,omitempty"`
	Time     []float64             `json:"time"`
	Modes    map[string]seriesJSON `json:"modes,omitempty"`
	Summed   *seriesJSON           `json:"summed,omitempty"`
}

func split(h []complex128) seriesJSON {
	s := seriesJSON{Re: make([]float64, len(h)), Im: make([]float64, len(h))}
	for i, v := range h {
		s.Re[i], s.Im[i] = real(v), imag(v)
	}
	return s
}

func sortedModes(modes map[waveform.Mode][]complex128) []waveform.Mode {
	out := make([]waveform.Mode, 0, len(modes))
	for md := range modes {
		out = append(out, md)
	}
	waveform.SortModes(out)
	return out
}

func warningsJSON(ws []validate.Warning) []warningJSON {
	out := make([]warningJSON, 0, len(ws))
	for _, w := range ws {
		out = append(out, warningJSON{Kind: w.Kind.String(), Message: w.Message, Index: w.Index})
	}
	return out
}

func writeResult(w io.Writer, format string, res *surrogate.Result) error {
	if format == config.FormatJSON {
		return writeJSON(w, res)
	}
	return writeTSV(w, res)
}

func writeJSON(w io.Writer, res *surrogate.Result) error {
	out := resultJSON{
		ID:       res.ID.String(),
		Model:    res.Model,
		Warnings: warningsJSON(res.Warnings),
		Time:     res.Time,
	}
	if res.Summed != nil {
		s := split(res.Summed)
		out.Summed = &s
	} else {
		out.Modes = make(map[string]seriesJSON, len(res.Modes))
		for md, h := range res.Modes {
			out.Modes[md.String()] = split(h)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeTSV writes one row per sample: t, then re and im of every column.
// Warnings become "#" comment lines ahead of the header.
func writeTSV(w io.Writer, res *surrogate.Result) error {
	bw := bufio.NewWriter(w)
	for _, wn := range res.Warnings {
		fmt.Fprintf(bw, "# warning %s: %s\n", wn.Kind, wn.Message)
	}

	var names []string
	var cols [][]complex128
	if res.Summed != nil {
		names, cols = []string{"h"}, [][]complex128{res.Summed}
	} else {
		for _, md := range sortedModes(res.Modes) {
			names = append(names, md.String())
			cols = append(cols, res.Modes[md])
		}
	}

	bw.WriteString("t")
	for _, n := range names {
		fmt.Fprintf(bw, "\tre%s\tim%s", n, n)
	}
	bw.WriteByte('\n')

	buf := make([]byte, 0, 32)
	for i, t := range res.Time {
		bw.Write(strconv.AppendFloat(buf[:0], t, 'g', -1, 64))
		for _, h := range cols {
			bw.WriteByte('\t')
			bw.Write(strconv.AppendFloat(buf[:0], real(h[i]), 'g', -1, 64))
			bw.WriteByte('\t')
			bw.Write(strconv.AppendFloat(buf[:0], imag(h[i]), 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
