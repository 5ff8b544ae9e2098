package purlin_test

import (
	"fmt"

	"github.com/alexiusacademia/gopurlin/internal/asd"
	"github.com/alexiusacademia/gopurlin/internal/catalog"
	"github.com/alexiusacademia/gopurlin/internal/purlin"
)

func ExampleDesign() {
	in := purlin.DefaultInput()
	in.SpanLength = 6
	in.PurlinSpacing = 1.5
	in.RoofSlope = 20
	in.TileWeight = 10
	in.SelfWeight = 5
	in.SagRod = asd.SagRodMidSpan
	in.DeflectionRatio = 200
	in.Table = catalog.LightLipChannel
	in.Row = 11

	res, err := purlin.Design(in)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Load on purlin: %.2f kg/m\n", res.Loads.LoadOnPurlin)
	fmt.Printf("Fb: %.2f ksc\n", res.Loads.AllowableStress)
	fmt.Printf("Section: %s\n", res.Section.Size)
	fmt.Printf("Bending: %s\n", res.Check.Bending.Message)
	fmt.Printf("Deflection: %s\n", res.Check.Deflection.Message)
	fmt.Printf("Self weight: %s\n", res.Check.SelfWeight.Message)
	// Output:
	// Load on purlin: 65.00 kg/m
	// Fb: 1440.00 ksc
	// Section: 150*75*20
	// Bending: OK.!
	// Deflection: OK.! (L/200)
	// Self weight: increase design self weight
}
