package dashboard_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/gridfit/pkg/dashboard"
	"github.com/matzehuels/gridfit/pkg/placement"
)

func ExampleLayout_AddWidget() {
	l, err := dashboard.ReadLayout(strings.NewReader(`{
		"columns": 12,
		"widgets": [{"id": "sales", "type": "chart", "position": {"x": 0, "y": 0, "w": 6, "h": 2}}]
	}`))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	def, _ := dashboard.DefaultCatalog().Lookup("kpi")
	p := placement.New(placement.WithColumns(l.Columns))
	res := p.FindBestPositionFor(l.Occupants(), def)

	w := l.AddWidget(def.Type, res.Rect(def.DefaultSize()))
	fmt.Println("placed:", w.Position)
	fmt.Println("widgets:", len(l.Widgets))
	// Output:
	// placed: 3x2@6,0
	// widgets: 2
}
