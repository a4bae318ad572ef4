package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/equipment"
)

type EquipmentTestSuite struct {
	suite.Suite
}

func TestEquipmentSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTestSuite))
}

func (s *EquipmentTestSuite) TestMerge() {
	merged := equipment.Merge([]dnd5e.Item{
		{Name: "Dagger", Quantity: 1},
		{Name: "Torch", Quantity: 10},
		{Name: "Dagger", Quantity: 2},
		{Name: "Nothing", Quantity: 0},
	})
	s.Equal([]dnd5e.Item{
		{Name: "Dagger", Quantity: 3},
		{Name: "Torch", Quantity: 10},
	}, merged)
}

func (s *EquipmentTestSuite) TestExpandReturnsCopy() {
	first := equipment.Expand(equipment.PackExplorer)
	s.Require().NotEmpty(first)
	first[0].Quantity = 99

	second := equipment.Expand(equipment.PackExplorer)
	s.Equal(1, second[0].Quantity)
	s.Nil(equipment.Expand("missing"))
}

func (s *EquipmentTestSuite) TestEveryPackExists() {
	for _, id := range []equipment.PackID{
		equipment.PackBurglar,
		equipment.PackDiplomat,
		equipment.PackDungeoneer,
		equipment.PackEntertainer,
		equipment.PackExplorer,
		equipment.PackPriest,
		equipment.PackScholar,
	} {
		p, ok := equipment.GetPack(id)
		s.Require().True(ok, string(id))
		s.NotEmpty(p.Contents)
		s.Equal(string(id), equipment.SRDKey(p.Name))
	}
}

func (s *EquipmentTestSuite) TestCatalogs() {
	s.Contains(equipment.CatalogMartialMeleeWeapon.Items(), "Longsword")
	s.NotContains(equipment.CatalogMartialMeleeWeapon.Items(), "Longbow")
	s.Contains(equipment.CatalogMartialWeapon.Items(), "Longbow")
	s.Contains(equipment.CatalogSimpleWeapon.Items(), "Light Crossbow")
	s.Empty(equipment.Catalog("unknown").Items())
}

func (s *EquipmentTestSuite) TestSRDKey() {
	s.Equal("thieves-tools", equipment.SRDKey("Thieves' Tools"))
	s.Equal("light-crossbow", equipment.SRDKey("Light Crossbow"))
	s.Equal("chain-mail", equipment.SRDKey(" Chain Mail "))
}
