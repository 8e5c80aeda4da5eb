package content

const defaultContent = `
name:
  foreign: ["弗兰克", "奥皮戈", "伊曼纽尔"]
  final: "Frank-Opigo A. Emmanuel"

tagline: "I'm a"
roles:
  - Software Developer
  - Frontend Developer
  - Desktop Developer
  - Smart Contract Developer

projects:
  - number: 1
    title: A Global Payment Solution
    description: >-
      Joined a team of engineers in building a cryptocurrency payment platform.
      Implemented secure wallet integration, multi-currency support, and
      real-time transaction monitoring with low latency across global markets.
    link: https://github.com/Twhite2
    image: /images/retailchain.jpg
    device: laptop
    symbol: 支付
  - number: 2
    title: Interactive 3D Interface
    description: >-
      An interactive 3D interface built with Trame and VTK using Python,
      allowing users to import, visualize and explore complex geometries or
      simulation data directly in the browser with intuitive controls.
    link: https://github.com/Twhite2
    image: /images/3dinterface.png
    device: laptop
    symbol: 界面
  - number: 4
    title: Blockchain Token Development
    description: >-
      Created and deployed an ERC-20 compliant token on Ethereum with smart
      contracts written in Solidity. The project includes built-in mechanisms
      for voting, staking, and deflationary tokenomics.
    link: https://github.com/Twhite2
    image: /images/projects/project1.svg
    device: laptop
    symbol: 加密
  - number: 5
    title: MERN Chat Application
    description: >-
      A real-time chat application built with the MERN stack with messaging
      functionality. Features include user authentication, group chats, and
      message encryption.
    link: https://github.com/Twhite2
    image: /images/mernchat.png
    device: laptop
    symbol: 网络

about: |
  I build software across the stack, from payment platforms to desktop
  tools and smart contracts. Lately I have been working on fintech products
  at [EverFinance](#).

  If you're interested in the tools and software I use, check out my
  [uses page](#).

  Away from the keyboard I read summaries on [Blinkist](#) and watch sci-fi
  and time travelling TV shows.

skills:
  - JavaScript/TypeScript
  - React, Next.js
  - Vue.js, Nuxt.js
  - Python, Flask
  - C++
  - SQL (MySQL/MongoDB)
  - PHP
  - Rust

contact:
  - label: Email
    href: "mailto:hello@example.com"
    icon: mail
  - label: GitHub
    href: https://github.com/Twhite2
    icon: github
  - label: LinkedIn
    href: "#"
    icon: linkedin
  - label: Lagos, Nigeria
    icon: location

footer: "Frank-Opigo (Jarvis)"
`
