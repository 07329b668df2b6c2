package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fightsCSV = `R_fighter,B_fighter,R_KD,B_KD,R_SIG_STR.,B_SIG_STR.,R_TOTAL_STR.,B_TOTAL_STR.,R_TD,B_TD,R_CTRL,B_CTRL,R_GROUND,B_GROUND,win_by,last_round,last_round_time,Format,Referee,date,location,Fight_type,Winner
Jon Jones,Ciryl Gane,0,0,4 of 6,2 of 5,9 of 11,2 of 5,1 of 1,0 of 0,1:56,0:00,4 of 4,0 of 0,Submission,1,2:04,5 Rnd (5-5-5-5-5),Herb Dean,2023-03-04,"Las Vegas, Nevada, USA",UFC Heavyweight Title Bout,Jon Jones
Alex Pereira,Israel Adesanya,1.0,0,28 of 55,24 of 46,30 of 57,26 of 48,0 of 0,0 of 0,0:05,0:11,0 of 0,1 of 1,KO/TKO,5,2:01,5 Rnd (5-5-5-5-5),Marc Goddard,"November 12, 2022","New York City, New York, USA",UFC Middleweight Title Bout,Alex Pereira
,Nobody,0,0,,,,,,,,,,,,,,,,2022-01-01,,,
A,B,0,0,,,,,,,,,,,,,,,,--,,,
`

const fightersCSV = `fighter_name,Height,Weight,Reach,Stance,DOB,SLpM,Str_Acc,SApM,Str_Def,TD_Avg,TD_Acc,TD_Def,Sub_Avg
Jon Jones,"6' 4""",248 lbs.,84.0,Orthodox,"Jul 19, 1987",4.29,57%,2.22,64%,1.93,45%,95%,0.5
Ciryl Gane,"6' 4""",247 lbs.,81.0,Orthodox,--,5.11,59%,2.59,58%,0.6,33%,45%,0.6
,x,x,x,x,x,x,x,x,x,x,x,x,x
Jon Jones,"6' 4""",250 lbs.,84.5,Orthodox,1987-07-19,4.3,57%,2.2,64%,1.9,45%,95%,0.5
`

func TestParseFights(t *testing.T) {
	fights, rejected, err := ParseFights(strings.NewReader(fightsCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, rejected)
	require.Len(t, fights, 2)

	jj := fights[0]
	assert.Equal(t, "Jon Jones", jj.RedFighter)
	assert.Equal(t, "Ciryl Gane", jj.BlueFighter)
	assert.True(t, jj.Date.Equal(day(2023, 3, 4)), jj.Date)
	assert.Equal(t, "UFC Heavyweight Title Bout", jj.FightType)
	assert.Equal(t, "Submission", jj.WinBy)
	assert.Equal(t, 1, jj.LastRound)
	assert.Equal(t, "2:04", jj.LastRoundTime)
	assert.Equal(t, "4 of 6", jj.RedSigStr)
	assert.Equal(t, "1:56", jj.RedCtrl)
	assert.Equal(t, "4 of 4", jj.RedGround)

	assert.True(t, fights[1].Date.Equal(day(2022, 11, 12)), fights[1].Date)
	assert.Equal(t, 1, fights[1].RedKD)
}

func TestParseFightsMissingColumn(t *testing.T) {
	_, _, err := ParseFights(strings.NewReader("R_fighter,date\nA,2020-01-01\n"))
	assert.ErrorContains(t, err, "B_fighter")

	fights, rejected, err := ParseFights(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fights)
	assert.Zero(t, rejected)
}

func TestParseFighters(t *testing.T) {
	fighters, rejected, err := ParseFighters(strings.NewReader(fightersCSV))
	require.NoError(t, err)
	assert.Equal(t, 1, rejected)
	require.Len(t, fighters, 2)

	jj := fighters[0]
	assert.Equal(t, "Jon Jones", jj.Name)
	assert.Equal(t, "250 lbs.", jj.Weight, "later rows replace earlier ones")
	assert.Equal(t, 84.5, jj.Reach)
	assert.Equal(t, `6' 4"`, jj.Height)
	require.NotNil(t, jj.DOB)
	assert.True(t, jj.DOB.Equal(day(1987, 7, 19)), *jj.DOB)

	assert.Nil(t, fighters[1].DOB)
	assert.Equal(t, 5.11, fighters[1].SLpM)
}

type fakeDataset struct {
	fights, fighters string
	err              error
}

func (f fakeDataset) FetchFights(ctx context.Context) ([]byte, error) {
	return []byte(f.fights), f.err
}

func (f fakeDataset) FetchFighters(ctx context.Context) ([]byte, error) {
	return []byte(f.fighters), nil
}

func TestImportRemote(t *testing.T) {
	fightStore := &fakeFightStore{}
	fighterStore := &fakeFighterStore{}
	svc := NewImportService(fightStore, fighterStore, fakeDataset{fights: fightsCSV, fighters: fightersCSV}, zerolog.Nop())

	res, err := svc.ImportRemote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Fights)
	assert.Equal(t, 2, res.Fighters)
	assert.Equal(t, 2, res.RejectedFights)
	assert.Equal(t, 1, res.RejectedFighters)
	assert.Len(t, fightStore.fights, 2)
	assert.Len(t, fighterStore.upserted, 2)

	svc = NewImportService(fightStore, fighterStore, fakeDataset{err: errors.New("timeout")}, zerolog.Nop())
	_, err = svc.ImportRemote(context.Background())
	assert.ErrorContains(t, err, "timeout")
}

func TestImportReadersOnlyFights(t *testing.T) {
	fightStore := &fakeFightStore{}
	fighterStore := &fakeFighterStore{}
	svc := NewImportService(fightStore, fighterStore, nil, zerolog.Nop())

	res, err := svc.Import(context.Background(), strings.NewReader(fightsCSV), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Fights)
	assert.Zero(t, res.Fighters)
	assert.Empty(t, fighterStore.upserted)
}
