package dtype

import (
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/lbytes"
)

type Item struct {
	ID                  int32               `toml:"id"`
	Inherit             int32               `toml:"inherit"`
	InventoryModel      uint16              `toml:"inventory_model"`
	Name                string              `toml:"name"`
	Zoom2D              uint16              `toml:"zoom_2d"`
	XAn2D               uint16              `toml:"xan_2d"`
	YAn2D               uint16              `toml:"yan_2d"`
	Stackable           bool                `toml:"stackable"`
	Cost                int32               `toml:"cost"`
	Members             bool                `toml:"members"`
	MaleModel           int32               `toml:"male_model"`
	FemaleModel         int32               `toml:"female_model"`
	GroundActions       [ActionSlots]string `toml:"ground_actions"`
	InventoryActions    [ActionSlots]string `toml:"inventory_actions"`
	NotedID             int32               `toml:"noted_id"`
	NotedTemplate       int32               `toml:"noted_template"`
	Team                uint8               `toml:"team"`
	PlaceholderID       int32               `toml:"placeholder_id"`
	PlaceholderTemplate int32               `toml:"placeholder_template"`
	Params              Params              `toml:"-"`
}

func NewItem(id int32) Item {
	return Item{
		ID:                  id,
		Inherit:             dcodec.NoInherit,
		Name:                "null",
		Zoom2D:              2000,
		Cost:                1,
		MaleModel:           -1,
		FemaleModel:         -1,
		GroundActions:       [ActionSlots]string{"", "", "Take", "", ""},
		InventoryActions:    [ActionSlots]string{"", "", "", "", "Drop"},
		NotedID:             -1,
		NotedTemplate:       -1,
		PlaceholderID:       -1,
		PlaceholderTemplate: -1,
	}
}

func (i Item) IsNoted() bool {
	return i.NotedTemplate != -1
}

var ItemSchema = dcodec.NewSchema(
	KindItem,
	TableItem,
	NewItem,
	func(i *Item) int32 { return i.ID },
	append(
		append(
			[]dcodec.Field[Item]{
				dcodec.Int[Item](1, "inventory_model", lbytes.EncodingU16, func(i *Item) *uint16 { return &i.InventoryModel }),
				dcodec.String[Item](2, "name", func(i *Item) *string { return &i.Name }),
				dcodec.Int[Item](4, "zoom_2d", lbytes.EncodingU16, func(i *Item) *uint16 { return &i.Zoom2D }),
				dcodec.Int[Item](5, "xan_2d", lbytes.EncodingU16, func(i *Item) *uint16 { return &i.XAn2D }),
				dcodec.Int[Item](6, "yan_2d", lbytes.EncodingU16, func(i *Item) *uint16 { return &i.YAn2D }),
				dcodec.Flag[Item](11, "stackable", func(i *Item) *bool { return &i.Stackable }, true),
				dcodec.Int[Item](12, "cost", lbytes.EncodingI32, func(i *Item) *int32 { return &i.Cost }),
				dcodec.Flag[Item](16, "members", func(i *Item) *bool { return &i.Members }, true),
				dcodec.Int[Item](23, "male_model", lbytes.EncodingU16Nullable, func(i *Item) *int32 { return &i.MaleModel }),
				dcodec.Int[Item](25, "female_model", lbytes.EncodingU16Nullable, func(i *Item) *int32 { return &i.FemaleModel }),
			},
			actionFields[Item](30, "ground_actions", func(i *Item) *[ActionSlots]string { return &i.GroundActions })...,
		),
		append(
			actionFields[Item](35, "inventory_actions", func(i *Item) *[ActionSlots]string { return &i.InventoryActions }),
			dcodec.Int[Item](97, "noted_id", lbytes.EncodingU16Nullable, func(i *Item) *int32 { return &i.NotedID }),
			dcodec.Int[Item](98, "noted_template", lbytes.EncodingU16Nullable, func(i *Item) *int32 { return &i.NotedTemplate }),
			dcodec.Int[Item](115, "team", lbytes.EncodingU8, func(i *Item) *uint8 { return &i.Team }),
			dcodec.Int[Item](148, "placeholder_id", lbytes.EncodingU16Nullable, func(i *Item) *int32 { return &i.PlaceholderID }),
			dcodec.Int[Item](149, "placeholder_template", lbytes.EncodingU16Nullable, func(i *Item) *int32 { return &i.PlaceholderTemplate }),
			paramsField[Item](func(i *Item) *Params { return &i.Params }),
		)...,
	),
).WithInherit(func(i *Item) int32 { return i.Inherit })
