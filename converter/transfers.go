package converter

import (
	"fmt"

	"github.com/theoremus-urban-solutions/subway-export/mapsme"
	"github.com/theoremus-urban-solutions/subway-export/model"
	"github.com/theoremus-urban-solutions/subway-export/osmid"
	"github.com/theoremus-urban-solutions/subway-export/utils"
)

// BuildTransfers turns transfer sets into pairwise transfers between stop
// areas that survived into the export.
func BuildTransfers(sets []model.TransferSet, survivors map[osmid.ElementID]bool) ([]mapsme.Transfer, error) {
	transfers := []mapsme.Transfer{}
	for _, set := range sets {
		for i := 0; i < len(set)-1; i++ {
			for j := i + 1; j < len(set); j++ {
				a, b := set[i], set[j]
				if !survivors[a.ID] || !survivors[b.ID] {
					continue
				}
				from, err := osmid.Encode(a.ID)
				if err != nil {
					return nil, fmt.Errorf("transfer from %s: %w", a.ID, err)
				}
				to, err := osmid.Encode(b.ID)
				if err != nil {
					return nil, fmt.Errorf("transfer to %s: %w", b.ID, err)
				}
				transfers = append(transfers, mapsme.Transfer{From: from, To: to, Seconds: TransferSeconds(a, b)})
			}
		}
	}
	return transfers, nil
}

// TransferSeconds estimates the walk between two stop areas.
func TransferSeconds(a, b *model.StopArea) int {
	return TransferPenalty + utils.TravelSeconds(utils.Distance(a.Center, b.Center), SpeedOnTransfer)
}
