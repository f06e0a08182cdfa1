package config

// DefaultPostTemplate is the post body used when template.post is not set.
// Placeholders use the fixed {token} vocabulary; unknown tokens are left
// untouched by the renderer.
const DefaultPostTemplate = `<p>{status_name} | {health} | {initiative_linked}</p>
<p>Lead: {lead_name}</p>
<p>{start_date} - {target_date}</p>
<div>{description}</div>
<p><a href="{url}" target="_blank" rel="noreferrer noopener">View on Linear</a></p>`
