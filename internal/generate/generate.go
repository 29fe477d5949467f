// Package generate defines the content generation and publish confirmation
// services consumed by the workflow engine. The shipped implementations are
// mocks that resolve after a fixed delay, standing in where a real
// generation backend and real platform integrations would be called.
package generate

import (
	"fmt"
	"strings"
	"time"

	"aistudio/internal/models"
)

// Generator produces content from a composition.
type Generator interface {
	Generate(comp models.Composition) (string, error)
	ViralIdeas(topic string) (string, error)
}

// Publisher confirms a publish or schedule action against the target
// platforms.
type Publisher interface {
	Publish(post models.Post) error
}

// Mock implements Generator and Publisher with templated results after a
// fixed latency window. Sleep is pluggable so tests run synchronously.
type Mock struct {
	Delay time.Duration
	Sleep func(time.Duration)
}

// NewMock returns a mock service with the original two-second generation
// window.
func NewMock() *Mock {
	return &Mock{Delay: 2 * time.Second}
}

func (m *Mock) wait() {
	if m.Delay <= 0 {
		return
	}
	if m.Sleep != nil {
		m.Sleep(m.Delay)
		return
	}
	time.Sleep(m.Delay)
}

// Generate renders the templated result for the composition's content type.
func (m *Mock) Generate(comp models.Composition) (string, error) {
	m.wait()

	switch comp.ContentType {
	case models.ContentText:
		format := comp.Format
		if format == "" {
			format = "post"
		}
		ids := make([]string, len(comp.Platforms))
		for i, p := range comp.Platforms {
			ids[i] = string(p)
		}
		return fmt.Sprintf("Here's your generated %s for %s:\n\n✨ %s\n\n"+
			"Our team has been working hard to bring you the best experience possible. "+
			"We can't wait to share more exciting updates with you soon! #Innovation #Growth #SocialMedia",
			format, strings.Join(ids, ", "), comp.Prompt), nil
	case models.ContentImage:
		if comp.ImageMode == "" || comp.ImageMode == models.ImageAI {
			return "AI-generated image would be displayed here", nil
		}
		return fmt.Sprintf("Here's a prompt to use on %s:\n\n"+
			"%q - Create a vibrant, professional image showing %s with natural lighting "+
			"and engaging composition. Use colors that align with your brand identity.",
			comp.ImageMode, comp.Prompt, comp.Prompt), nil
	case models.ContentVideo:
		return "Video script and storyboard generated based on your prompt. Use this with video creation tools like Veed.io:\n\n" +
			"Scene 1: Intro - Brief overview of the topic\n" +
			"Scene 2: Problem statement\n" +
			"Scene 3: Solution reveal\n" +
			"Scene 4: Benefits showcase\n" +
			"Scene 5: Call to action\n\n" +
			"Recommended visuals: bright colors, minimal text overlays, authentic footage", nil
	default:
		return "", fmt.Errorf("unknown content type %q", comp.ContentType)
	}
}

// ViralIdeas renders five templated content ideas for a topic.
func (m *Mock) ViralIdeas(topic string) (string, error) {
	m.wait()

	return "Here are 5 viral content ideas based on your topic:\n\n" +
		fmt.Sprintf("1. \"5 Surprising Facts About %s That Will Blow Your Mind\"\n", topic) +
		fmt.Sprintf("2. \"The %s Challenge That's Taking Over Social Media\"\n", topic) +
		fmt.Sprintf("3. \"How %s Is Changing The Way We Think About Business\"\n", topic) +
		fmt.Sprintf("4. \"What Nobody Tells You About %s - Industry Secrets Revealed\"\n", topic) +
		fmt.Sprintf("5. \"I Tried %s For 30 Days - Here's What Happened\"", topic), nil
}

// Publish simulates the platform confirmation call. The mock always
// succeeds after its delay.
func (m *Mock) Publish(post models.Post) error {
	m.wait()
	return nil
}
