package services

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"github.com/nexthire/job-board/internal/models"
)

const modificationCodeLength = 8

// Uppercase plus digits: readable when shown to a poster once.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const maxGenerateAttempts = 100

var posterAdjectives = []string{
	"Agile", "Bright", "Creative", "Dynamic", "Efficient", "Focused",
	"Global", "Honest", "Innovative", "Keen", "Logical", "Methodical",
	"Noble", "Optimal", "Positive", "Qualified", "Resourceful", "Strategic",
	"Technical", "Unique", "Versatile", "Wise", "Xenial", "Youthful", "Zealous",
}

var posterNouns = []string{
	"Achiever", "Analyst", "Architect", "Artisan", "Builder", "Catalyst",
	"Champion", "Consultant", "Creator", "Developer", "Director", "Engineer",
	"Expert", "Facilitator", "Guru", "Innovator", "Leader", "Manager",
	"Mentor", "Negotiator", "Optimizer", "Originator", "Pioneer", "Planner",
	"Producer", "Professional", "Programmer", "Strategist", "Specialist", "Thinker",
	"Visionary", "Wizard",
}

// generateModificationCode produces a unique 8-character code. The code is a
// bearer secret, so it comes from crypto/rand; uniqueness is enforced with a
// retry loop against the table.
func (s *JobService) generateModificationCode() (string, error) {
	for i := 0; i < maxGenerateAttempts; i++ {
		code, err := randomString(modificationCodeLength, codeAlphabet)
		if err != nil {
			return "", err
		}

		var count int64
		if err := s.DB.Model(&models.Job{}).
			Where("modification_code = ?", code).
			Count(&count).Error; err != nil {
			return "", errors.Wrap(err, "check modification code uniqueness")
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique modification code")
}

// generatePosterUsername combines a random adjective and noun
// (e.g. "Strategic Innovator"), retrying until the pair is unused.
func (s *JobService) generatePosterUsername() (string, error) {
	for i := 0; i < maxGenerateAttempts; i++ {
		adj, err := pick(posterAdjectives)
		if err != nil {
			return "", err
		}
		noun, err := pick(posterNouns)
		if err != nil {
			return "", err
		}
		username := adj + " " + noun

		var count int64
		if err := s.DB.Model(&models.Job{}).
			Where("poster_username = ?", username).
			Count(&count).Error; err != nil {
			return "", errors.Wrap(err, "check poster username uniqueness")
		}
		if count == 0 {
			return username, nil
		}
	}
	return "", errors.New("could not generate a unique poster username")
}

func randomString(n int, alphabet string) (string, error) {
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", errors.Wrap(err, "read random")
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b), nil
}

func pick(words []string) (string, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		return "", errors.Wrap(err, "read random")
	}
	return words[idx.Int64()], nil
}
