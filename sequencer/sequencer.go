// This file is part of Checkergen.
//
// Checkergen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Checkergen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Checkergen.  If not, see <https://www.gnu.org/licenses/>.

package sequencer

import (
	"path/filepath"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/exporter"
	"github.com/jetsetilly/checkergen/group"
	"github.com/jetsetilly/checkergen/logger"
	"github.com/jetsetilly/checkergen/options"
	"github.com/jetsetilly/checkergen/project"
	"github.com/jetsetilly/checkergen/random"
	"github.com/jetsetilly/checkergen/runstate"
	"github.com/jetsetilly/checkergen/trigger"
	"github.com/jetsetilly/checkergen/wavwriter"
)

// Sentinal error patterns.
const (
	PlayError = "sequencer: %v"
)

// player plays a queue of items in a single run.
type player struct {
	prj  *project.Project
	rs   *runstate.RunState
	q    *queue
	wait group.WaitScreen
}

// blank plays one of the project's blank periods. the blank is a group with
// no shapes and a cross that is shown throughout.
func (pl *player) blank(t float64) error {
	if t <= 0 {
		return nil
	}
	g, err := group.NewGroup(t, 0, 0)
	if err != nil {
		return err
	}
	_, err = g.Display(pl.rs, group.Cue{Order: -1})
	return err
}

func (pl *player) play() error {
	pre, post := pl.prj.Blank()

	if err := pl.blank(pre); err != nil {
		return err
	}

	// the queue may grow while it is being played
	for i := 0; i < len(pl.q.items) && !pl.rs.Terminated(); i++ {
		it := pl.q.items[i]

		if it.Kind == KindWait {
			if _, err := pl.wait.Display(pl.rs, it.Cue); err != nil {
				return err
			}
			continue
		}

		g, err := pl.prj.Group(it.ID)
		if err != nil {
			return err
		}

		pass, err := g.Display(pl.rs, it.Cue)
		if err != nil {
			return err
		}

		// a group cut short by the end of the run is not recorded
		if pl.rs.Terminated() && !g.Over() {
			break
		}

		pl.rs.Record(it.ID, pass)
		if !pass {
			logger.Logf(logger.Allow, "sequencer", "group %d failed fixation (attempt %d)", it.ID, it.Attempt)
			if pl.q.retry(it) {
				logger.Logf(logger.Allow, "sequencer", "group %d will be played again", it.ID)
			}
		}
	}

	if !pl.rs.Terminated() {
		if err := pl.blank(post); err != nil {
			return err
		}
	}

	return nil
}

// groupFrames returns a function that gives the number of frames of each group
// in the project.
func groupFrames(prj *project.Project) func(id int) int {
	return func(id int) int {
		g, err := prj.Group(id)
		if err != nil {
			return 0
		}
		return g.Frames(prj.FPS())
	}
}

// runFrames returns the number of frames needed to play the groups, each
// repeated, with the project blanks before and after. Returns -1 if any group
// never ends.
func runFrames(prj *project.Project, groups []int, repeats int) (int, error) {
	var total int

	pre, post := prj.Blank()
	for _, t := range []float64{pre, post} {
		if t <= 0 {
			continue
		}
		b, err := group.NewGroup(t, 0, 0)
		if err != nil {
			return 0, err
		}
		total += b.Frames(prj.FPS())
	}

	for _, id := range groups {
		g, err := prj.Group(id)
		if err != nil {
			return 0, err
		}
		n := g.Frames(prj.FPS())
		if n == group.Infinite {
			return -1, nil
		}
		total += n * repeats
	}

	return total, nil
}

// groupCount returns the number of group ids in the order, ignoring wait
// screens.
func groupCount(order []int) int {
	var n int
	for _, id := range order {
		if id != project.WaitID {
			n++
		}
	}
	return n
}

// Display runs the project on the output in dev. The order of groups is
// decided by ResolveOrder(). The output is closed when Display() returns.
//
// The result of the run is returned even if an error occurs part way through
// the run.
func Display(prj *project.Project, explicit []int, opts *options.Display, dev runstate.Devices) (res runstate.Result, rerr error) {
	rnd := random.NewRandom(int64(opts.Seed.Int()))
	logger.Logf(logger.Allow, "sequencer", "random seed: %d", rnd.Seed())

	order, idx, err := ResolveOrder(prj, explicit, rnd)
	if err != nil {
		if dev.Output != nil {
			_ = dev.Output.Close()
		}
		return res, err
	}
	logger.Logf(logger.Allow, "sequencer", "playing order %v", order)

	rs, err := runstate.Start(prj.Settings(), opts, dev)
	if err != nil {
		return res, err
	}
	defer func() {
		if err := rs.Stop(); err != nil && rerr == nil {
			rerr = err
		}
		res = rs.Result()
	}()

	rs.SetOrder(order)

	trybreak := opts.TryBreak.Int()
	if trybreak == 0 {
		trybreak = groupCount(order)
	}

	tryagain := 0
	if opts.Retry() {
		tryagain = opts.TryAgain.Int()
	}

	pl := &player{
		prj: prj,
		rs:  rs,
		q:   newQueue(Plan(order, idx, opts.Repeats.Int(), !opts.Waitless.Bool()), tryagain, trybreak),
	}
	settle(pl.q.items, groupFrames(prj))

	if err := pl.play(); err != nil {
		return res, curated.Errorf(PlayError, err)
	}

	if rs.Terminated() {
		logger.Logf(logger.Allow, "sequencer", "run ended early after %d frames", rs.Frames())
	}

	return res, nil
}

// ExportParams specify how a project is exported.
type ExportParams struct {
	// the directory that will contain the exported files
	Dir string

	// the maximum duration in seconds to export. may be infinite, in which
	// case the whole run is exported
	Duration float64

	// export into a new folder named after the project
	Folder bool

	// allow very large exports
	Force bool

	// write the trigger track as a WAV file alongside the images
	Track bool
}

// Export writes every frame of the project to image files. Wait screens are
// skipped and no hardware is opened. The eye tracker is never used and so
// failed groups are never retried.
func Export(prj *project.Project, explicit []int, opts *options.Display, ep ExportParams) (res runstate.Result, rerr error) {
	eo := opts.Copy()
	for _, k := range []string{"eyetrack", "trigser", "trigpar"} {
		if err := eo.Set(k, false); err != nil {
			return res, err
		}
	}

	rnd := random.NewRandom(int64(eo.Seed.Int()))
	order, idx, err := ResolveOrder(prj, explicit, rnd)
	if err != nil {
		return res, err
	}

	// wait screens are never exported
	groups := make([]int, 0, len(order))
	for _, id := range order {
		if id != project.WaitID {
			groups = append(groups, id)
		}
	}

	total, err := runFrames(prj, groups, eo.Repeats.Int())
	if err != nil {
		return res, err
	}

	n, err := exporter.Frames(ep.Duration, prj.FPS(), total)
	if err != nil {
		return res, err
	}

	ex, err := exporter.NewExporter(exporter.Params{
		Dir:    ep.Dir,
		Name:   prj.Name(),
		Frames: n,
		Folder: ep.Folder,
		Force:  ep.Force,
	})
	if err != nil {
		return res, err
	}

	rs, err := runstate.Start(prj.Settings(), eo, runstate.Devices{
		Output: ex,
		Ports:  []trigger.Port{},
	})
	if err != nil {
		return res, err
	}
	defer func() {
		if err := rs.Stop(); err != nil && rerr == nil {
			rerr = err
		}
		res = rs.Result()
	}()

	rs.SetOrder(order)

	if n > 0 {
		pl := &player{
			prj: prj,
			rs:  rs,
			q:   newQueue(Plan(groups, idx, eo.Repeats.Int(), false), 0, 1),
		}
		settle(pl.q.items, groupFrames(prj))

		if err := pl.play(); err != nil {
			return res, curated.Errorf(PlayError, err)
		}
	}

	if ep.Track {
		codes := rs.Result().Triggers
		if len(codes) > n {
			codes = codes[:n]
		}

		fn := filepath.Join(ex.Dir(), prj.Name()+".wav")
		if err := wavwriter.Write(fn, codes, prj.FPS()); err != nil {
			return res, err
		}
		logger.Logf(logger.Allow, "sequencer", "trigger track written to %s", fn)
	}

	return res, nil
}
