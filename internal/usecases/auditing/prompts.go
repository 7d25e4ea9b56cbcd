package auditing

import "fmt"

// LandingPageAnalysisSystemPrompt orienta o modelo a atuar como analista de
// otimização de páginas de destino
const LandingPageAnalysisSystemPrompt = `You are an expert digital marketing and UX analyst specializing in landing page optimization. Your role is to analyze web pages and provide actionable insights for improving conversion rates, user experience, and overall effectiveness.
When analyzing landing pages, focus on:
- Content clarity and value proposition strength
- User experience and conversion optimization
- Technical SEO and performance indicators
- Trust signals and credibility elements
- Mobile responsiveness and accessibility
- Competitive positioning and differentiation
Provide specific, actionable recommendations with clear priorities. Use concrete examples and reference specific elements when possible. Structure your response with clear headings and bullet points for readability.`

// DefaultLandingPageCopyPrompt é a instrução padrão de extração de conteúdo
const DefaultLandingPageCopyPrompt = `Output the copy from the URL provided. Do not include any HTML or CSS.`

// DefaultLandingPageAnalysisPrompt é o roteiro padrão de auditoria aplicado
// quando o usuário não fornece um prompt próprio
const DefaultLandingPageAnalysisPrompt = `# Landing Page Checker
Please analyze the landing page and provide insights for each section below:

## 1. The Offer (Foundation)
- Core value proposition: what they get, why it matters, how and when it's delivered, and who it's for.
- Unique selling points: why this solution is better than alternatives.
- Value boosters: bonuses, additional features, onboarding, or guarantees that increase perceived value.
- Social proof: testimonials, media mentions, stats.
- Risk removal: guarantees, trials, cancel-anytime policies.
- Match the offer to the visitor's awareness stage (unaware, problem-aware, solution-aware, product-aware, most-aware).

## 2. Informational Hierarchy (Structure)
- So what? Core value proposition.
- Who cares? Benefits and relevance.
- Says who? Trust and authority.
- What if? Objection handling.
- Why now? Urgency and scarcity.
- Now what? Clear call to action.
- Logical progression that reduces friction and aligns with natural scanning patterns.

## 3. Copy & Persuasion (Messaging)
- Focus on outcomes, not features.
- Language that matches audience awareness.
- Emotional and logical benefits (time saved, stress reduced, confidence gained).
- Short, bold headlines with outcome focus; subheads that clarify or expand the promise.
- Natural, conversational tone; avoid vague, jargon-heavy language.

## 4. Visual Hierarchy (Presentation)
- Hero section: clear headline, subheadline, visual, and CTA.
- Directional cues, contrast, and prioritization of content.
- Watch for visual clutter, misaligned message-visual pairing, and secondary links that leak conversions.

## 5. Trust & Objection Handling
- Institutional trust: certifications, security, compliance.
- Expertise trust: media features, results, credentials.
- Social proof: specific testimonials, case studies, precise stats, endorsements.
- Objection handling: guarantees, FAQ sections, value framing, process clarity.

## 6. Urgency & Scarcity (Why Now?)
- Limited-time offers, countdown timers, expiring bonuses.
- Limited quantity, exclusive access, one-time pricing.
- Avoid manipulative tactics. Use urgency ethically and authentically.

## 7. Calls-to-Action (Now What?)
- Focus on what the user gets ("Get my free plan"), not what they must do ("Submit").
- First-person phrasing for ownership.
- Place CTAs where intent is high; reinforce with value, social proof, and urgency.

Please apply each section to the page and prioritize the most impactful improvements.`

// BuildCopyPrompt monta o pedido de extração do conteúdo de uma página
func BuildCopyPrompt(url string) string {
	return fmt.Sprintf(`Please extract and output the copy from the landing page at this URL: %s

%s`, url, DefaultLandingPageCopyPrompt)
}

// BuildAnalysisPrompt anexa o conteúdo extraído ao roteiro de auditoria
func BuildAnalysisPrompt(copy, userPrompt string) string {
	if userPrompt == "" {
		userPrompt = DefaultLandingPageAnalysisPrompt
	}

	return fmt.Sprintf(`%s

**Landing Page Copy to Analyze:**
%s

Please apply the above analysis framework to this landing page copy and provide specific, actionable insights.`, userPrompt, copy)
}
