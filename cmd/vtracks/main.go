package main

import(
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/skypies/vesseldb"
)

var(
	fMaxGapMin   int
	fMinPoints   int
	fIntervalSec int
	fGapMin      int
	fShowGaps    bool
)

func init() {
	flag.IntVar(&fMaxGapMin, "maxgap", 60, "structural gap threshold, minutes")
	flag.IntVar(&fMinPoints, "minpoints", 5, "fewest reports worth a track")
	flag.IntVar(&fIntervalSec, "interval", 180, "expected update interval, seconds")
	flag.IntVar(&fGapMin, "gapmin", 30, "reportable gap threshold, minutes")
	flag.BoolVar(&fShowGaps, "gaps", false, "list reportable gaps per track")
	flag.Parse()
}

func main() {
	if len(flag.Args()) != 1 {
		log.Fatal("usage: vtracks [-gaps] reports.json\n")
	}

	src := vesseldb.NewMemSource()
	if err := loadReports(flag.Args()[0], src); err != nil {
		log.Fatalf("loading %s: %v\n", flag.Args()[0], err)
	}

	db := vesseldb.NewVesselDB(src)
	db.Config.MaxGap = time.Duration(fMaxGapMin) * time.Minute
	db.Config.MinPointsForTrack = fMinPoints
	db.Config.ExpectedUpdateInterval = time.Duration(fIntervalSec) * time.Second
	db.Config.MinReportableGap = time.Duration(fGapMin) * time.Minute

	for _,vt := range db.ReconstructAllTracks() {
		fmt.Printf("%s\n", vt)
		fmt.Printf("  meta: %s; avg %.2fkts, max %.2fkts\n",
			vt.Metadata, vt.AvgSpeedKts, vt.MaxSpeedKts)
		for i,seg := range vt.Segments(db.Config) {
			fmt.Printf("  seg %d: %s\n", i, seg)
		}
		if fShowGaps {
			for _,g := range vt.Gaps(db.Config) {
				fmt.Printf("  %s\n", g)
			}
		}
	}
}

func loadReports(fname string, src *vesseldb.MemSource) error {
	b,err := os.ReadFile(fname)
	if err != nil { return err }

	reports := []vesseldb.PositionReport{}
	if err := json.Unmarshal(b, &reports); err != nil {
		return fmt.Errorf("unmarshal: %v", err)
	}

	src.Add(reports...)
	return nil
}
