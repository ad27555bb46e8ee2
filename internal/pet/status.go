package pet

// GetStatus returns the status emoji(s) for the pet: what it shows now,
// followed by its most pressing need when one exists.
func GetStatus(mood Mood, s Stats) string {
	face := moodEmoji(mood)

	var need string
	switch NeedOf(s) {
	case NeedHealth:
		need = StatusEmojiSick
	case NeedFood:
		need = StatusEmojiHungry
	case NeedFun:
		need = StatusEmojiBored
	}

	// Don't repeat the face when the need already explains it
	if need != "" && mood == Baseline(s) && mood != MoodIdle {
		return face
	}
	return face + need
}

// GetStatusWithLabel returns status with text labels for the UI
func GetStatusWithLabel(mood Mood, s Stats) string {
	status := GetStatus(mood, s)

	switch mood {
	case MoodSleep:
		if NeedOf(s) == NeedHealth {
			return status + " Sick, needs healing"
		}
		return status + " Sleepy"
	case MoodAngry:
		if NeedOf(s) == NeedFood {
			return status + " Hungry!"
		}
		return status + " Grumpy"
	case MoodHappy:
		return status + " Happy"
	case MoodSurprised:
		return status + " Surprised!"
	case MoodLove:
		return status + " Loving it"
	}

	switch NeedOf(s) {
	case NeedHealth:
		return status + " Sick"
	case NeedFood:
		return status + " Hungry"
	case NeedFun:
		return status + " Bored"
	default:
		return status + " Content"
	}
}

func moodEmoji(m Mood) string {
	switch m {
	case MoodHappy:
		return StatusEmojiHappy
	case MoodSleep:
		return StatusEmojiSleeping
	case MoodSurprised:
		return StatusEmojiSurprised
	case MoodAngry:
		return StatusEmojiAngry
	case MoodLove:
		return StatusEmojiLove
	default:
		return StatusEmojiContent
	}
}
