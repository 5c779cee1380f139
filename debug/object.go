package debug

import (
	"fmt"

	"github.com/iand/gdate"

	"github.com/syednoorhussain2025/hopgen/itinerary"
	"github.com/syednoorhussain2025/hopgen/model"
)

func ObjectTitle(obj any) string {
	if obj == nil {
		return "none"
	}
	switch tobj := obj.(type) {
	case *model.Place:
		if tobj == nil {
			return "<nil>"
		}
		return fmt.Sprintf("%s (%s)", tobj.Name, tobj.ID)
	case *model.Article:
		if tobj == nil {
			return "<nil>"
		}
		return fmt.Sprintf("%s (%s)", tobj.Title, tobj.ID)
	case *itinerary.Trip:
		if tobj == nil {
			return "<nil>"
		}
		return fmt.Sprintf("%s (%s)", tobj.Title, tobj.ID)
	case *model.Date:
		return tobj.String()
	case gdate.Date:
		return tobj.String()
	case model.Era:
		return tobj.Name
	}

	return "unknown type"
}
