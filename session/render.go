package session

import (
	"fmt"
	"strings"

	"github.com/domino14/reelwords/round"
)

const (
	msgEnterUser       = "Please, enter an user id..."
	msgEnterWord       = "Enter a word using the max number of letters below..."
	msgAskSave         = "Would you like to save the game?"
	msgAskLoad         = "There is a saved game. Would you like to continue that game?"
	msgInvalidOption   = "You must enter a valid option."
	msgGameOnly        = "That command is only available during the game."
	msgUnexpectedError = "We're sorry. An unexpected error has occurred. Restart the application and try again."
	msgSaved           = "Game saved!!"
	msgNotSaved        = "The game couldn't be saved due to an error."
)

func frame(width int, title string) string {
	stars := strings.Repeat("*", width)
	pad := (width - len(title) - 2) / 2
	if pad < 0 {
		pad = 0
	}
	return stars + "\n" +
		strings.Repeat("*", pad) + " " + title + " " + strings.Repeat("*", pad) + "\n" +
		stars + "\n"
}

func welcomeText() string {
	return frame(46, "Welcome to ReelWords!!")
}

func instructionsText() string {
	return " - Build words with the letters of the reel. Every letter can be used once,\n" +
		"   and each reel you use scrolls to show a new letter. The longer the word\n" +
		"   and the rarer its letters, the more points it is worth.\n"
}

func helpText(penalty int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(" - '%s' -> End game.\n", round.ExitKeyword))
	sb.WriteString(fmt.Sprintf(" - '%s' -> If you cannot find words, you can shuffle the letters "+
		"with a %d points penalty. (Only during the game)\n", round.ShuffleKeyword, penalty))
	sb.WriteString(fmt.Sprintf(" - '%s' -> Show submitted words in the game. (Only during the game)\n",
		round.ShowWordsKeyword))
	sb.WriteString(fmt.Sprintf(" - '%s' -> Show these commands.\n", round.HelpKeyword))
	return sb.String()
}

func goodbyeText() string {
	return frame(44, "Thanks for playing!!")
}

func invalidUserText(languageName string) string {
	return fmt.Sprintf("The user id must only contain letters of %s language.", languageName)
}

func penaltyText(points, total int) string {
	return fmt.Sprintf("Oops!! You have lost %d points. Total points: %d.", points, total)
}

func submittedText(word string, points, total int) string {
	return fmt.Sprintf("Great!! The word '%s' is correct. You have obtained %d points!! Total points: %d.",
		word, points, total)
}
