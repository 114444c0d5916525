package prefetch_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/okian/execap/internal/adapters/prefetch"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPool(t *testing.T) {
	Convey("Given a pool over an in-memory fetcher", t, func() {
		var calls atomic.Int64
		fetch := func(_ context.Context, name string) ([]byte, error) {
			calls.Add(1)
			return []byte("data:" + name), nil
		}

		Convey("FetchAll returns every object keyed by name", func() {
			names := make([]string, 0, 100)
			for i := 0; i < 100; i++ {
				names = append(names, fmt.Sprintf("companies/acme/2024/file_%d.csv", i))
			}

			out, err := prefetch.New(fetch, prefetch.WithWorkers(8)).FetchAll(context.Background(), names)
			So(err, ShouldBeNil)
			So(out, ShouldHaveLength, 100)
			So(calls.Load(), ShouldEqual, 100)
			So(string(out[names[7]]), ShouldEqual, "data:"+names[7])
		})

		Convey("An empty batch is a no-op", func() {
			out, err := prefetch.New(fetch).FetchAll(context.Background(), nil)
			So(err, ShouldBeNil)
			So(out, ShouldBeEmpty)
			So(calls.Load(), ShouldEqual, 0)
		})

		Convey("Worker count never exceeds the batch size", func() {
			p := prefetch.New(fetch, prefetch.WithWorkers(64))
			So(p.Workers(), ShouldEqual, 64)

			out, err := p.FetchAll(context.Background(), []string{"only.csv"})
			So(err, ShouldBeNil)
			So(out, ShouldHaveLength, 1)
		})
	})

	Convey("Given a fetcher that fails on one object", t, func() {
		boom := errors.New("object store down")
		fetch := func(_ context.Context, name string) ([]byte, error) {
			if name == "bad.csv" {
				return nil, boom
			}
			return []byte("ok"), nil
		}

		Convey("FetchAll surfaces the error", func() {
			_, err := prefetch.New(fetch, prefetch.WithWorkers(2)).FetchAll(
				context.Background(), []string{"a.csv", "bad.csv", "b.csv"})
			So(errors.Is(err, boom), ShouldBeTrue)
		})
	})

	Convey("Given a canceled context", t, func() {
		var mu sync.Mutex
		served := 0
		fetch := func(ctx context.Context, _ string) ([]byte, error) {
			mu.Lock()
			served++
			mu.Unlock()
			return []byte("ok"), ctx.Err()
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("FetchAll returns the context error", func() {
			_, err := prefetch.New(fetch).FetchAll(ctx, []string{"a.csv", "b.csv"})
			So(err, ShouldNotBeNil)
		})
	})
}
