package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-chargen/internal/clients/srd"
	srdmock "github.com/KirkDiggler/rpg-chargen/internal/clients/srd/mock"
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/generator"
	generatormock "github.com/KirkDiggler/rpg-chargen/internal/orchestrators/generator/mock"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/rpg-chargen/internal/repositories/character/mock"
	charactersvc "github.com/KirkDiggler/rpg-chargen/internal/services/character"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockGenerator *generatormock.MockService
	mockCharRepo  *characterrepomock.MockRepository
	mockSRD       *srdmock.MockClient
	orchestrator  *character.Orchestrator
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGenerator = generatormock.NewMockService(s.ctrl)
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockSRD = srdmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := character.New(&character.Config{
		Generator:     s.mockGenerator,
		CharacterRepo: s.mockCharRepo,
		SRDClient:     s.mockSRD,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func testCharacter(id string) *dnd5e.Character {
	return &dnd5e.Character{
		ID:   id,
		Name: "Bruenor Battlehammer",
		Equipment: []dnd5e.Item{
			{Name: "Chain Mail", Quantity: 1},
			{Name: "Holy Symbol", Quantity: 1},
		},
	}
}

// bareOrchestrator has no repository or SRD client
func (s *OrchestratorTestSuite) bareOrchestrator() *character.Orchestrator {
	o, err := character.New(&character.Config{Generator: s.mockGenerator})
	s.Require().NoError(err)
	return o
}

func (s *OrchestratorTestSuite) TestNewRequiresGenerator() {
	_, err := character.New(&character.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateCharacters_SeedsAdvancePerCharacter() {
	var seeds []int64
	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *generator.GenerateInput) (*generator.GenerateOutput, error) {
			s.Equal("dwarf", in.RaceID)
			seeds = append(seeds, in.Seed)
			return &generator.GenerateOutput{Character: testCharacter("char_1")}, nil
		}).
		Times(3)

	out, err := s.orchestrator.GenerateCharacters(s.ctx, &charactersvc.GenerateCharactersInput{
		Options: &generator.GenerateInput{RaceID: "dwarf", Seed: 10},
		Count:   3,
	})

	s.Require().NoError(err)
	s.Len(out.Characters, 3)
	s.Equal([]int64{10, 11, 12}, seeds)
	s.Nil(out.ItemNotes)
}

func (s *OrchestratorTestSuite) TestGenerateCharacters_DefaultsToOne() {
	s.mockGenerator.EXPECT().
		Generate(s.ctx, &generator.GenerateInput{}).
		Return(&generator.GenerateOutput{Character: testCharacter("char_1")}, nil)

	out, err := s.orchestrator.GenerateCharacters(s.ctx, &charactersvc.GenerateCharactersInput{})
	s.Require().NoError(err)
	s.Len(out.Characters, 1)
}

func (s *OrchestratorTestSuite) TestGenerateCharacters_InvalidInput() {
	testCases := []struct {
		name  string
		input *charactersvc.GenerateCharactersInput
	}{
		{"nil input", nil},
		{"negative count", &charactersvc.GenerateCharactersInput{Count: -1}},
		{"count too large", &charactersvc.GenerateCharactersInput{Count: charactersvc.MaxBatch + 1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.GenerateCharacters(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestGenerateCharacters_GeneratorError() {
	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("unknown race"))

	_, err := s.orchestrator.GenerateCharacters(s.ctx, &charactersvc.GenerateCharactersInput{Count: 2})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "failed to generate character 1 of 2")
}

func (s *OrchestratorTestSuite) TestGenerateCharacters_Save() {
	c := testCharacter("char_1")
	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(&generator.GenerateOutput{Character: c}, nil)
	s.mockCharRepo.EXPECT().
		Create(s.ctx, characterrepo.CreateInput{Character: c}).
		Return(&characterrepo.CreateOutput{Character: c}, nil)

	out, err := s.orchestrator.GenerateCharacters(s.ctx, &charactersvc.GenerateCharactersInput{Save: true})
	s.Require().NoError(err)
	s.Equal(c, out.Characters[0])
}

func (s *OrchestratorTestSuite) TestGenerateCharacters_SaveConflict() {
	c := testCharacter("char_1")
	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(&generator.GenerateOutput{Character: c}, nil)
	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExistsf("character %s already exists", c.ID))

	_, err := s.orchestrator.GenerateCharacters(s.ctx, &charactersvc.GenerateCharactersInput{Save: true})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Equal("char_1", errors.GetMeta(err)["character_id"])
}

func (s *OrchestratorTestSuite) TestGenerateCharacters_SaveRollsBackBatch() {
	first, second, third := testCharacter("char_1"), testCharacter("char_2"), testCharacter("char_3")
	gomock.InOrder(
		s.mockGenerator.EXPECT().Generate(s.ctx, gomock.Any()).Return(&generator.GenerateOutput{Character: first}, nil),
		s.mockGenerator.EXPECT().Generate(s.ctx, gomock.Any()).Return(&generator.GenerateOutput{Character: second}, nil),
		s.mockGenerator.EXPECT().Generate(s.ctx, gomock.Any()).Return(&generator.GenerateOutput{Character: third}, nil),
	)
	gomock.InOrder(
		s.mockCharRepo.EXPECT().
			Create(s.ctx, characterrepo.CreateInput{Character: first}).
			Return(&characterrepo.CreateOutput{Character: first}, nil),
		s.mockCharRepo.EXPECT().
			Create(s.ctx, characterrepo.CreateInput{Character: second}).
			Return(&characterrepo.CreateOutput{Character: second}, nil),
		s.mockCharRepo.EXPECT().
			Create(s.ctx, characterrepo.CreateInput{Character: third}).
			Return(nil, errors.AlreadyExistsf("character %s already exists", third.ID)),
	)
	s.mockCharRepo.EXPECT().
		Delete(gomock.Any(), characterrepo.DeleteInput{ID: "char_1"}).
		Return(&characterrepo.DeleteOutput{}, nil)
	s.mockCharRepo.EXPECT().
		Delete(gomock.Any(), characterrepo.DeleteInput{ID: "char_2"}).
		Return(nil, errors.Unavailablef("redis down"))

	_, err := s.orchestrator.GenerateCharacters(s.ctx, &charactersvc.GenerateCharactersInput{Count: 3, Save: true})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Equal("char_3", errors.GetMeta(err)["character_id"])
}

func (s *OrchestratorTestSuite) TestGenerateCharacters_SaveWithoutStorage() {
	_, err := s.bareOrchestrator().GenerateCharacters(s.ctx, &charactersvc.GenerateCharactersInput{Save: true})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestGenerateCharacters_Annotate() {
	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(&generator.GenerateOutput{Character: testCharacter("char_1")}, nil)
	s.mockSRD.EXPECT().
		GetEquipment(gomock.Any(), "chain-mail").
		Return(&srd.Equipment{Name: "Chain Mail", ArmorClass: 16, Weight: 55, Cost: &srd.Cost{Quantity: 75, Unit: "gp"}}, nil)
	s.mockSRD.EXPECT().
		GetEquipment(gomock.Any(), "holy-symbol").
		Return(nil, errors.Unavailablef("not in the SRD"))

	out, err := s.orchestrator.GenerateCharacters(s.ctx, &charactersvc.GenerateCharactersInput{Annotate: true})
	s.Require().NoError(err)
	s.Equal(map[string]string{"Chain Mail": "AC 16, 55 lb, 75 gp"}, out.ItemNotes)
}

func (s *OrchestratorTestSuite) TestGenerateCharacters_AnnotateWithoutSRD() {
	_, err := s.bareOrchestrator().GenerateCharacters(s.ctx, &charactersvc.GenerateCharactersInput{Annotate: true})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestGetCharacter() {
	c := testCharacter("char_7")
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char_7"}).
		Return(&characterrepo.GetOutput{Character: c}, nil)

	out, err := s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{CharacterID: "char_7"})
	s.Require().NoError(err)
	s.Equal(c, out.Character)
}

func (s *OrchestratorTestSuite) TestGetCharacter_Errors() {
	s.Run("empty id", func() {
		_, err := s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("not found", func() {
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{ID: "char_404"}).
			Return(nil, errors.NotFound("character not found"))

		_, err := s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{CharacterID: "char_404"})
		s.True(errors.IsNotFound(err))
		s.Contains(err.Error(), "failed to get character")
	})

	s.Run("no storage", func() {
		_, err := s.bareOrchestrator().GetCharacter(s.ctx, &charactersvc.GetCharacterInput{CharacterID: "char_1"})
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	chars := []*dnd5e.Character{testCharacter("char_1"), testCharacter("char_2")}
	s.mockCharRepo.EXPECT().
		List(s.ctx, characterrepo.ListInput{Limit: 5}).
		Return(&characterrepo.ListOutput{Characters: chars}, nil)

	out, err := s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{Limit: 5})
	s.Require().NoError(err)
	s.Equal(chars, out.Characters)

	_, err = s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{Limit: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "char_1"}).
		Return(&characterrepo.DeleteOutput{}, nil)

	out, err := s.orchestrator.DeleteCharacter(s.ctx, &charactersvc.DeleteCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Character char_1 deleted successfully", out.Message)

	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "char_2"}).
		Return(nil, errors.NotFound("character not found"))

	_, err = s.orchestrator.DeleteCharacter(s.ctx, &charactersvc.DeleteCharacterInput{CharacterID: "char_2"})
	s.True(errors.IsNotFound(err))
}
