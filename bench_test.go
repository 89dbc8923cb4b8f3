package ziphdr

import (
	"context"
	"fmt"
	"testing"
	"time"
)

var (
	benchSinkBytes  []byte
	benchSinkHeader *Header
	benchSinkTrail  *Trailer
	benchSinkPacked uint32
	errBenchSink    error //nolint:errname // not a sentinel error, just a sink variable
)

func BenchmarkNormalize(b *testing.B) {
	cases := []struct {
		name  string
		entry Entry
	}{
		{"ascii", Entry{Name: "dir/sub/file.txt", ModTime: testDate}},
		{"windows", Entry{Name: `C:\Users\me\..\file.txt`, ModTime: testDate, Mode: 0o644}},
		{"unicode", Entry{Name: "données/résumé.txt", Comment: "überblick", ModTime: testDate}},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				benchSinkHeader, errBenchSink = Normalize(tc.entry)
			}
		})
	}
}

func BenchmarkLocalFileHeader(b *testing.B) {
	h := mustNormalize(b, Entry{Name: "dir/sub/file.txt", ModTime: testDate})
	b.ReportAllocs()
	for b.Loop() {
		benchSinkBytes, errBenchSink = h.LocalFileHeader()
	}
}

func BenchmarkDirectoryEncode(b *testing.B) {
	for _, n := range []int{16, 1024} {
		for _, workers := range []int{1, 8} {
			b.Run(fmt.Sprintf("entries=%d/workers=%d", n, workers), func(b *testing.B) {
				d := buildDirectory(b, n, DirectoryWithConcurrency(workers))
				b.ReportAllocs()
				for b.Loop() {
					benchSinkTrail, errBenchSink = d.Encode(context.Background(), uint64(n*100))
				}
				if errBenchSink != nil {
					b.Fatal(errBenchSink)
				}
			})
		}
	}
}

func BenchmarkPackTime(b *testing.B) {
	t := time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC)
	for b.Loop() {
		benchSinkPacked = PackTime(t, true)
	}
}
