package datagen_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/execap/internal/adapters/source/gcs"
	"github.com/okian/execap/internal/datagen"
	"github.com/okian/execap/internal/domain/league"
	. "github.com/smartystreets/goconvey/convey"
)

// dirStore adapts a generated output directory to the loader's object store
// interface, the way a bucket sync would expose it.
type dirStore struct {
	root string
}

func (d *dirStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	return names, err
}

func (d *dirStore) Read(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.root, filepath.FromSlash(name)))
}

func TestRun(t *testing.T) {
	Convey("Given a generation config", t, func() {
		out := t.TempDir()
		cfg := &datagen.Config{
			OutDir:    out,
			Companies: 3,
			Years:     []int{2023, 2024},
			Seed:      42,
		}

		Convey("Run writes the bucket layout", func() {
			So(datagen.Run(cfg), ShouldBeNil)

			store := &dirStore{root: out}
			names, err := store.List(context.Background(), "companies/")
			So(err, ShouldBeNil)
			// 5 files per company per year
			So(names, ShouldHaveLength, 3*2*5)

			Convey("And the generated dataset loads cleanly", func() {
				rs, err := gcs.New(store).Load(context.Background(), 2024)
				So(err, ShouldBeNil)
				So(rs.Companies, ShouldHaveLength, 3)
				So(rs.Issues, ShouldBeEmpty)
				So(rs.Warnings, ShouldBeEmpty)

				snap, err := league.Build(rs, 2024)
				So(err, ShouldBeNil)

				sum := snap.Summary()
				So(sum.Companies, ShouldEqual, 3)
				So(sum.AbsentCompanies, ShouldEqual, 0)
				So(sum.TotalSpendUSD, ShouldBeGreaterThan, 0)
				So(snap.Years(), ShouldResemble, []int{2024, 2023})

				for _, c := range snap.Standings() {
					So(c.Roster, ShouldHaveLength, 5)
					So(c.Board, ShouldHaveLength, 6)
					So(c.Cap.BudgetUSD, ShouldBeGreaterThanOrEqualTo, 60_000_000)
				}
			})
		})

		Convey("Generation is deterministic for a fixed seed", func() {
			So(datagen.Run(cfg), ShouldBeNil)
			other := t.TempDir()
			So(datagen.Run(&datagen.Config{OutDir: other, Companies: 3, Years: []int{2023, 2024}, Seed: 42}), ShouldBeNil)

			a, err := os.ReadFile(firstCSV(t, out))
			So(err, ShouldBeNil)
			b, err := os.ReadFile(firstCSV(t, other))
			So(err, ShouldBeNil)
			So(string(a), ShouldEqual, string(b))
		})

		Convey("Bad configs are rejected", func() {
			So(datagen.Run(&datagen.Config{OutDir: out, Companies: 0, Years: []int{2024}}), ShouldEqual, datagen.ErrNoCompanies)
			So(datagen.Run(&datagen.Config{OutDir: out, Companies: 1}), ShouldEqual, datagen.ErrNoYears)
		})
	})
}

func firstCSV(t *testing.T, root string) string {
	t.Helper()
	var first string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if first == "" && !entry.IsDir() && strings.HasSuffix(path, "_executive_compensation.csv") {
			first = path
		}
		return nil
	})
	if err != nil || first == "" {
		t.Fatalf("no generated csv under %s: %v", root, err)
	}
	return first
}
