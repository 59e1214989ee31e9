package catalogue

import "a11ycheck/internal/checklist/models"

// wcag22 is the WCAG 2.2 success-criteria table, ordered by criterion
// number. Compiled in at build time; never mutated at runtime.
var wcag22 = []Guideline{
	{
		ID:          "1.1.1",
		Level:       models.LevelA,
		Title:       "Non-text Content",
		Description: "All non-text content (images, icons, charts, buttons, form inputs) must have meaningful text alternatives that convey the same information or function. Use alt attributes for images, aria-label for icons, and ensure decorative elements are marked as such (alt=\"\" or role=\"presentation\"). This helps screen readers understand visual content.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/non-text-content.html",
	},
	{
		ID:          "1.2.1",
		Level:       models.LevelA,
		Title:       "Audio-only and Video-only (Prerecorded)",
		Description: "For prerecorded audio-only content (podcasts, music), provide a text transcript. For video-only content (silent animations, visual demonstrations), provide audio description or text alternative that describes the visual information. This ensures users who cannot see or hear the content can still access the information.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/audio-only-and-video-only-prerecorded.html",
	},
	{
		ID:          "1.2.2",
		Level:       models.LevelA,
		Title:       "Captions (Prerecorded)",
		Description: "All prerecorded videos with audio must have synchronized captions that include dialogue, sound effects, and other relevant audio information. Captions should be accurate, well-positioned, and synchronized with the audio. Use proper caption formatting and ensure they don't obscure important visual content.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/captions-prerecorded.html",
	},
	{
		ID:          "1.2.3",
		Level:       models.LevelA,
		Title:       "Audio Description or Media Alternative (Prerecorded)",
		Description: "An alternative for time-based media or audio description is provided for prerecorded video.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/audio-description-or-media-alternative-prerecorded.html",
	},
	{
		ID:          "1.2.4",
		Level:       models.LevelAA,
		Title:       "Captions (Live)",
		Description: "Captions are provided for all live audio content in synchronized media.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/captions-live.html",
	},
	{
		ID:          "1.2.5",
		Level:       models.LevelAA,
		Title:       "Audio Description (Prerecorded)",
		Description: "Audio description is provided for all prerecorded video content in synchronized media.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/audio-description-prerecorded.html",
	},
	{
		ID:          "1.2.6",
		Level:       models.LevelAAA,
		Title:       "Sign Language (Prerecorded)",
		Description: "Sign language interpretation is provided for all prerecorded audio content.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/sign-language-prerecorded.html",
	},
	{
		ID:          "1.2.7",
		Level:       models.LevelAAA,
		Title:       "Extended Audio Description (Prerecorded)",
		Description: "Extended audio description is provided for all prerecorded video content.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/extended-audio-description-prerecorded.html",
	},
	{
		ID:          "1.2.8",
		Level:       models.LevelAAA,
		Title:       "Media Alternative (Prerecorded)",
		Description: "An alternative for time-based media is provided for all prerecorded synchronized media.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/media-alternative-prerecorded.html",
	},
	{
		ID:          "1.2.9",
		Level:       models.LevelAAA,
		Title:       "Audio-only (Live)",
		Description: "An alternative that presents equivalent information for live audio-only content is provided.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/audio-only-live.html",
	},
	{
		ID:          "1.3.1",
		Level:       models.LevelA,
		Title:       "Info and Relationships",
		Description: "Use proper semantic HTML elements and ARIA attributes to convey information structure and relationships. Headings should be properly nested (h1\u2192h2\u2192h3), form labels must be associated with inputs, lists should use ul/ol/li elements, and table data should include proper headers. This allows assistive technology to understand and navigate the content structure.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/info-and-relationships.html",
	},
	{
		ID:          "1.3.2",
		Level:       models.LevelA,
		Title:       "Meaningful Sequence",
		Description: "Ensure content is presented in a logical order that makes sense when accessed sequentially (like tab navigation or screen reader flow). The DOM order should match the visual order, and CSS positioning should not create misleading reading sequences. This is crucial for keyboard navigation and screen reader users.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/meaningful-sequence.html",
	},
	{
		ID:          "1.3.3",
		Level:       models.LevelA,
		Title:       "Sensory Characteristics",
		Description: "Instructions and content should not rely solely on sensory characteristics like shape, color, size, visual location, orientation, or sound. For example, don't say \"click the green button\" or \"the item on the right\" - also provide text labels or other identifying information that doesn't depend on sensory perception.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/sensory-characteristics.html",
	},
	{
		ID:          "1.3.4",
		Level:       models.LevelAA,
		Title:       "Orientation",
		Description: "Content does not restrict its view and operation to a single display orientation.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/orientation.html",
	},
	{
		ID:          "1.3.5",
		Level:       models.LevelAA,
		Title:       "Identify Input Purpose",
		Description: "The purpose of each input field can be programmatically determined.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/identify-input-purpose.html",
	},
	{
		ID:          "1.3.6",
		Level:       models.LevelAAA,
		Title:       "Identify Purpose",
		Description: "The purpose of User Interface Components, icons, and regions can be programmatically determined.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/identify-purpose.html",
	},
	{
		ID:          "1.4.1",
		Level:       models.LevelA,
		Title:       "Use of Color",
		Description: "Color alone cannot be the only way to convey information, indicate an action, prompt a response, or distinguish elements. Always pair color with other visual indicators like text, icons, patterns, or borders. For example, form validation errors should use both red color AND error icons or text labels.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/use-of-color.html",
	},
	{
		ID:          "1.4.2",
		Level:       models.LevelA,
		Title:       "Audio Control",
		Description: "If audio plays automatically for more than 3 seconds, there is a mechanism to pause, stop, or control volume.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/audio-control.html",
	},
	{
		ID:          "1.4.3",
		Level:       models.LevelAA,
		Title:       "Contrast (Minimum)",
		Description: "Text and background colors must have sufficient contrast: at least 4.5:1 for normal text, 3:1 for large text (18pt+ or 14pt+ bold), and 3:1 for UI components and graphical elements. Use contrast checking tools to verify. This ensures text is readable for users with visual impairments or in various lighting conditions.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/contrast-minimum.html",
	},
	{
		ID:          "1.4.4",
		Level:       models.LevelAA,
		Title:       "Resize Text",
		Description: "Text can be resized without assistive technology up to 200 percent without loss of content or functionality.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/resize-text.html",
	},
	{
		ID:          "1.4.5",
		Level:       models.LevelAA,
		Title:       "Images of Text",
		Description: "If technologies can achieve the visual presentation, text is used to convey information rather than images of text.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/images-of-text.html",
	},
	{
		ID:          "1.4.6",
		Level:       models.LevelAAA,
		Title:       "Contrast (Enhanced)",
		Description: "The visual presentation of text and images has a contrast ratio of at least 7:1.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/contrast-enhanced.html",
	},
	{
		ID:          "1.4.7",
		Level:       models.LevelAAA,
		Title:       "Low or No Background Audio",
		Description: "For prerecorded audio-only content, background sounds are low or can be turned off.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/low-or-no-background-audio.html",
	},
	{
		ID:          "1.4.8",
		Level:       models.LevelAAA,
		Title:       "Visual Presentation",
		Description: "For the visual presentation of blocks of text, a mechanism is available to achieve specific presentation.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/visual-presentation.html",
	},
	{
		ID:          "1.4.9",
		Level:       models.LevelAAA,
		Title:       "Images of Text (No Exception)",
		Description: "Images of text are only used for pure decoration or where a particular presentation of text is essential.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/images-of-text-no-exception.html",
	},
	{
		ID:          "1.4.10",
		Level:       models.LevelAA,
		Title:       "Reflow",
		Description: "Content can be presented without loss of information or functionality, and without requiring scrolling in two dimensions.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/reflow.html",
	},
	{
		ID:          "1.4.11",
		Level:       models.LevelAA,
		Title:       "Non-text Contrast",
		Description: "The visual presentation of User Interface Components and graphical objects have a contrast ratio of at least 3:1.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/non-text-contrast.html",
	},
	{
		ID:          "1.4.12",
		Level:       models.LevelAA,
		Title:       "Text Spacing",
		Description: "No loss of content or functionality occurs by setting specific text spacing properties.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/text-spacing.html",
	},
	{
		ID:          "1.4.13",
		Level:       models.LevelAA,
		Title:       "Content on Hover or Focus",
		Description: "Where receiving and then removing pointer hover or keyboard focus triggers additional content to become visible and then hidden.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/content-on-hover-or-focus.html",
	},
	{
		ID:          "2.1.1",
		Level:       models.LevelA,
		Title:       "Keyboard",
		Description: "All interactive functionality must be accessible using only a keyboard. Users should be able to navigate, activate buttons, fill forms, and access all features using Tab, Enter, Space, and arrow keys. Ensure proper focus management and provide visible focus indicators. Custom components may need additional keyboard event handlers.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/keyboard.html",
	},
	{
		ID:          "2.1.2",
		Level:       models.LevelA,
		Title:       "No Keyboard Trap",
		Description: "Users must be able to navigate away from any component using standard keyboard navigation (Tab, Shift+Tab, Escape). Avoid focus traps unless they serve a specific purpose (like modal dialogs), and always provide a clear way to exit. Modal dialogs should trap focus within them but allow closing with Escape key.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/no-keyboard-trap.html",
	},
	{
		ID:          "2.1.3",
		Level:       models.LevelAAA,
		Title:       "Keyboard (No Exception)",
		Description: "All functionality of the content is operable through a keyboard interface without exception.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/keyboard-no-exception.html",
	},
	{
		ID:          "2.1.4",
		Level:       models.LevelA,
		Title:       "Character Key Shortcuts",
		Description: "If a keyboard shortcut is implemented using only letter, punctuation, number, or symbol characters, then it can be turned off, remapped, or is only active when the component has focus.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/character-key-shortcuts.html",
	},
	{
		ID:          "2.2.1",
		Level:       models.LevelA,
		Title:       "Timing Adjustable",
		Description: "For each time limit that is set by the content, users can turn off, adjust, or extend the time limit.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/timing-adjustable.html",
	},
	{
		ID:          "2.2.2",
		Level:       models.LevelA,
		Title:       "Pause, Stop, Hide",
		Description: "For moving, blinking, scrolling, or auto-updating information, users can pause, stop, or hide it.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/pause-stop-hide.html",
	},
	{
		ID:          "2.2.3",
		Level:       models.LevelAAA,
		Title:       "No Timing",
		Description: "Timing is not an essential part of the event or activity presented by the content.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/no-timing.html",
	},
	{
		ID:          "2.2.4",
		Level:       models.LevelAAA,
		Title:       "Interruptions",
		Description: "Interruptions can be postponed or suppressed by the user.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/interruptions.html",
	},
	{
		ID:          "2.2.5",
		Level:       models.LevelAAA,
		Title:       "Re-authenticating",
		Description: "When an authenticated session expires, the user can continue the activity without loss of data after re-authenticating.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/re-authenticating.html",
	},
	{
		ID:          "2.2.6",
		Level:       models.LevelAAA,
		Title:       "Timeouts",
		Description: "Users are warned of the duration of any user inactivity that could cause data loss.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/timeouts.html",
	},
	{
		ID:          "2.3.1",
		Level:       models.LevelA,
		Title:       "Three Flashes or Below Threshold",
		Description: "Web pages do not contain anything that flashes more than three times in any one second period.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/three-flashes-or-below-threshold.html",
	},
	{
		ID:          "2.3.2",
		Level:       models.LevelAAA,
		Title:       "Three Flashes",
		Description: "Web pages do not contain anything that flashes more than three times in any one second period.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/three-flashes.html",
	},
	{
		ID:          "2.3.3",
		Level:       models.LevelAAA,
		Title:       "Animation from Interactions",
		Description: "Motion animation triggered by interaction can be disabled, unless the animation is essential to the functionality or the information being conveyed.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/animation-from-interactions.html",
	},
	{
		ID:          "2.4.1",
		Level:       models.LevelA,
		Title:       "Bypass Blocks",
		Description: "A mechanism is available to bypass blocks of content that are repeated on multiple Web pages.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/bypass-blocks.html",
	},
	{
		ID:          "2.4.2",
		Level:       models.LevelA,
		Title:       "Page Titled",
		Description: "Web pages have titles that describe topic or purpose.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/page-titled.html",
	},
	{
		ID:          "2.4.3",
		Level:       models.LevelA,
		Title:       "Focus Order",
		Description: "If a Web page can be navigated sequentially and the navigation sequences affect meaning or operation, focusable components receive focus in an order that preserves meaning and operability.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/focus-order.html",
	},
	{
		ID:          "2.4.4",
		Level:       models.LevelA,
		Title:       "Link Purpose (In Context)",
		Description: "The purpose of each link can be determined from the link text alone or from the link text together with its programmatically determined link context.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/link-purpose-in-context.html",
	},
	{
		ID:          "2.4.5",
		Level:       models.LevelAA,
		Title:       "Multiple Ways",
		Description: "More than one way is available to locate a Web page within a set of Web pages.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/multiple-ways.html",
	},
	{
		ID:          "2.4.6",
		Level:       models.LevelAA,
		Title:       "Headings and Labels",
		Description: "Headings and labels describe topic or purpose.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/headings-and-labels.html",
	},
	{
		ID:          "2.4.7",
		Level:       models.LevelAA,
		Title:       "Focus Visible",
		Description: "Any keyboard operable user interface has a mode of operation where the keyboard focus indicator is visible.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/focus-visible.html",
	},
	{
		ID:          "2.4.8",
		Level:       models.LevelAAA,
		Title:       "Location",
		Description: "Information about the user's location within a set of Web pages is available.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/location.html",
	},
	{
		ID:          "2.4.9",
		Level:       models.LevelAAA,
		Title:       "Link Purpose (Link Only)",
		Description: "A mechanism is available to allow the purpose of each link to be identified from link text alone.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/link-purpose-link-only.html",
	},
	{
		ID:          "2.4.10",
		Level:       models.LevelAAA,
		Title:       "Section Headings",
		Description: "Section headings are used to organize the content.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/section-headings.html",
	},
	{
		ID:          "2.4.11",
		Level:       models.LevelAA,
		Title:       "Focus Not Obscured (Minimum)",
		Description: "When a user interface component receives keyboard focus, the component is not entirely hidden due to author-created content.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/focus-not-obscured-minimum.html",
	},
	{
		ID:          "2.4.12",
		Level:       models.LevelAAA,
		Title:       "Focus Not Obscured (Enhanced)",
		Description: "When a user interface component receives keyboard focus, no part of the component is hidden by author-created content.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/focus-not-obscured-enhanced.html",
	},
	{
		ID:          "2.4.13",
		Level:       models.LevelAAA,
		Title:       "Focus Appearance",
		Description: "When the keyboard focus indicator is visible, an area of the focus indicator meets specific size and contrast requirements.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/focus-appearance.html",
	},
	{
		ID:          "2.5.1",
		Level:       models.LevelA,
		Title:       "Pointer Gestures",
		Description: "All functionality that uses multipoint or path-based gestures for operation can be operated with a single pointer without a path-based gesture.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/pointer-gestures.html",
	},
	{
		ID:          "2.5.2",
		Level:       models.LevelA,
		Title:       "Pointer Cancellation",
		Description: "For functionality that can be operated using a single pointer, specific requirements for down-event and up-event are met.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/pointer-cancellation.html",
	},
	{
		ID:          "2.5.3",
		Level:       models.LevelA,
		Title:       "Label in Name",
		Description: "For user interface components with labels that include text or images of text, the name contains the text that is presented visually.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/label-in-name.html",
	},
	{
		ID:          "2.5.4",
		Level:       models.LevelA,
		Title:       "Motion Actuation",
		Description: "Functionality that can be operated by device motion or user motion can also be operated by user interface components.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/motion-actuation.html",
	},
	{
		ID:          "2.5.5",
		Level:       models.LevelAAA,
		Title:       "Target Size (Enhanced)",
		Description: "The size of the target for pointer inputs is at least 44 by 44 CSS pixels.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/target-size-enhanced.html",
	},
	{
		ID:          "2.5.6",
		Level:       models.LevelAAA,
		Title:       "Concurrent Input Mechanisms",
		Description: "Web content does not restrict use of input modalities available on a platform.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/concurrent-input-mechanisms.html",
	},
	{
		ID:          "2.5.7",
		Level:       models.LevelAA,
		Title:       "Dragging Movements",
		Description: "All functionality that uses a dragging movement for operation can be achieved by a single pointer without dragging.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/dragging-movements.html",
	},
	{
		ID:          "2.5.8",
		Level:       models.LevelAA,
		Title:       "Target Size (Minimum)",
		Description: "The size of the target for pointer inputs is at least 24 by 24 CSS pixels.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/target-size-minimum.html",
	},
	{
		ID:          "3.1.1",
		Level:       models.LevelA,
		Title:       "Language of Page",
		Description: "The default human language of each Web page can be programmatically determined.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/language-of-page.html",
	},
	{
		ID:          "3.1.2",
		Level:       models.LevelAA,
		Title:       "Language of Parts",
		Description: "The human language of each passage or phrase in the content can be programmatically determined.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/language-of-parts.html",
	},
	{
		ID:          "3.1.3",
		Level:       models.LevelAAA,
		Title:       "Unusual Words",
		Description: "A mechanism is available for identifying specific definitions of words or phrases used in an unusual or restricted way.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/unusual-words.html",
	},
	{
		ID:          "3.1.4",
		Level:       models.LevelAAA,
		Title:       "Abbreviations",
		Description: "A mechanism for identifying the expanded form or meaning of abbreviations is available.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/abbreviations.html",
	},
	{
		ID:          "3.1.5",
		Level:       models.LevelAAA,
		Title:       "Reading Level",
		Description: "When text requires reading ability more advanced than the lower secondary education level, supplemental content or a version that does not require such reading ability is available.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/reading-level.html",
	},
	{
		ID:          "3.1.6",
		Level:       models.LevelAAA,
		Title:       "Pronunciation",
		Description: "A mechanism is available for identifying specific pronunciation of words where meaning of the words is ambiguous without knowing the pronunciation.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/pronunciation.html",
	},
	{
		ID:          "3.2.1",
		Level:       models.LevelA,
		Title:       "On Focus",
		Description: "When any user interface component receives focus, it does not initiate a change of context.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/on-focus.html",
	},
	{
		ID:          "3.2.2",
		Level:       models.LevelA,
		Title:       "On Input",
		Description: "Changing the setting of any user interface component does not automatically cause a change of context.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/on-input.html",
	},
	{
		ID:          "3.2.3",
		Level:       models.LevelAA,
		Title:       "Consistent Navigation",
		Description: "Navigational mechanisms that are repeated on multiple Web pages occur in the same relative order each time they are repeated.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/consistent-navigation.html",
	},
	{
		ID:          "3.2.4",
		Level:       models.LevelAA,
		Title:       "Consistent Identification",
		Description: "Components that have the same functionality are identified consistently.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/consistent-identification.html",
	},
	{
		ID:          "3.2.5",
		Level:       models.LevelAAA,
		Title:       "Change on Request",
		Description: "Changes of context are initiated only by user request or a mechanism is available to turn off such changes.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/change-on-request.html",
	},
	{
		ID:          "3.2.6",
		Level:       models.LevelAAA,
		Title:       "Consistent Help",
		Description: "If a Web page contains any of the specific help mechanisms, it is in the same relative order on each Web page.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/consistent-help.html",
	},
	{
		ID:          "3.3.1",
		Level:       models.LevelA,
		Title:       "Error Identification",
		Description: "When form validation detects errors, clearly identify which fields have problems and describe the error in text. Use aria-describedby to associate error messages with form fields, provide clear error messages (not just \"invalid\"), and ensure screen readers can access the error information. Visual indicators alone (like red borders) are not sufficient.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/error-identification.html",
	},
	{
		ID:          "3.3.2",
		Level:       models.LevelA,
		Title:       "Labels or Instructions",
		Description: "Every form input must have a clear, descriptive label or instructions. Use proper <label> elements with \"for\" attributes, or aria-label/aria-labelledby for custom inputs. Include format requirements (like date formats), required field indicators, and any constraints. Placeholder text alone is not sufficient as it disappears when typing.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/labels-or-instructions.html",
	},
	{
		ID:          "3.3.3",
		Level:       models.LevelAA,
		Title:       "Error Suggestion",
		Description: "When validation errors occur and you know how to fix them, provide specific suggestions to help users correct the mistakes. Instead of \"Invalid date\" say \"Enter date in MM/DD/YYYY format\". For required fields, say \"Email address is required\". Make suggestions clear, actionable, and accessible to assistive technology.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/error-suggestion.html",
	},
	{
		ID:          "3.3.4",
		Level:       models.LevelAA,
		Title:       "Error Prevention (Legal, Financial, Data)",
		Description: "For Web pages that cause legal commitments or financial transactions, submissions are reversible, checked, or confirmed.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/error-prevention-legal-financial-data.html",
	},
	{
		ID:          "3.3.5",
		Level:       models.LevelAAA,
		Title:       "Help",
		Description: "Context-sensitive help is available.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/help.html",
	},
	{
		ID:          "3.3.6",
		Level:       models.LevelAAA,
		Title:       "Error Prevention (All)",
		Description: "For Web pages that require the user to submit information, submissions are reversible, checked, or confirmed.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/error-prevention-all.html",
	},
	{
		ID:          "3.3.7",
		Level:       models.LevelA,
		Title:       "Redundant Entry",
		Description: "Information previously entered by or provided to the user is either auto-populated or available for selection.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/redundant-entry.html",
	},
	{
		ID:          "3.3.8",
		Level:       models.LevelAA,
		Title:       "Accessible Authentication (Minimum)",
		Description: "A cognitive function test is not required for any step in an authentication process unless specific conditions are met.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/accessible-authentication-minimum.html",
	},
	{
		ID:          "3.3.9",
		Level:       models.LevelAAA,
		Title:       "Accessible Authentication (Enhanced)",
		Description: "A cognitive function test is not required for any step in an authentication process.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/accessible-authentication-enhanced.html",
	},
	{
		ID:          "4.1.1",
		Level:       models.LevelA,
		Title:       "Parsing",
		Description: "In content implemented using markup languages, elements have complete start and end tags and are nested according to their specifications.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/parsing.html",
	},
	{
		ID:          "4.1.2",
		Level:       models.LevelA,
		Title:       "Name, Role, Value",
		Description: "For all user interface components, the name and role can be programmatically determined.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/name-role-value.html",
	},
	{
		ID:          "4.1.3",
		Level:       models.LevelAA,
		Title:       "Status Messages",
		Description: "In content implemented using markup languages, status messages can be programmatically determined through role or properties.",
		URL:         "https://www.w3.org/WAI/WCAG22/Understanding/status-messages.html",
	},
}
